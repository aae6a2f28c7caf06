// Package models defines the core domain models for GasTrip.
//
// # Trip
//
//   - TripInputs: the three user-supplied quantities (distance, consumption, price)
//   - Totals: values derived from TripInputs, never persisted
//   - SplitResult: total cost shared across a party
//
// # Assistant
//
//   - Query: a request to estimate one missing input (distance, consumption or price)
//   - Insight: a short fuel-saving tip with an impact tag
//
// Models carry no behavior beyond validation of their enumerations. The
// arithmetic lives in the calculator package, the state in the session package.
package models
