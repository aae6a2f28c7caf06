package models

import "fmt"

// HelperKind identifies which trip input an assistant query estimates.
type HelperKind string

const (
	HelperDistance    HelperKind = "distance"
	HelperConsumption HelperKind = "consumption"
	HelperPrice       HelperKind = "price"
)

// Field returns the trip input filled by a helper of this kind.
func (k HelperKind) Field() Field {
	return Field(k)
}

// TripType tells whether a distance query covers one leg or both.
type TripType string

const (
	OneWay    TripType = "one-way"
	RoundTrip TripType = "round-trip"
)

// RouteProfile is the driving cycle used to estimate consumption.
type RouteProfile string

const (
	RouteUrban   RouteProfile = "urban"
	RouteMixed   RouteProfile = "mixed"
	RouteHighway RouteProfile = "highway"
)

// FuelType is the fuel whose price is queried.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
)

// Query is a request to estimate one missing trip input from free text.
// It is implemented by DistanceQuery, ConsumptionQuery and PriceQuery.
type Query interface {
	Kind() HelperKind
}

// DistanceQuery asks for the road distance between two places.
type DistanceQuery struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	TripType    TripType `json:"trip_type"`
}

// ConsumptionQuery asks for the average consumption of a vehicle.
type ConsumptionQuery struct {
	Vehicle      string       `json:"vehicle"`
	RouteProfile RouteProfile `json:"route_profile"`
}

// PriceQuery asks for the current fuel price at a location.
type PriceQuery struct {
	Location string   `json:"location"`
	FuelType FuelType `json:"fuel_type"`
}

func (DistanceQuery) Kind() HelperKind    { return HelperDistance }
func (ConsumptionQuery) Kind() HelperKind { return HelperConsumption }
func (PriceQuery) Kind() HelperKind       { return HelperPrice }

// Impact grades how much an insight saves.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Valid reports whether the impact is one of the known grades.
func (i Impact) Valid() bool {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return true
	}
	return false
}

// Insight is a short fuel-saving tip produced by the assistant.
type Insight struct {
	Title  string `json:"title"`
	Tip    string `json:"tip"`
	Impact Impact `json:"impact"`
}

// ParseHelperKind validates a helper kind name.
func ParseHelperKind(s string) (HelperKind, error) {
	switch k := HelperKind(s); k {
	case HelperDistance, HelperConsumption, HelperPrice:
		return k, nil
	}
	return "", fmt.Errorf("unknown helper %q (want distance, consumption or price)", s)
}

// ParseTripType validates a trip type. Empty means one-way.
func ParseTripType(s string) (TripType, error) {
	switch t := TripType(s); t {
	case "":
		return OneWay, nil
	case OneWay, RoundTrip:
		return t, nil
	}
	return "", fmt.Errorf("unknown trip type %q (want one-way or round-trip)", s)
}

// ParseRouteProfile validates a route profile. Empty means mixed.
func ParseRouteProfile(s string) (RouteProfile, error) {
	switch r := RouteProfile(s); r {
	case "":
		return RouteMixed, nil
	case RouteUrban, RouteMixed, RouteHighway:
		return r, nil
	}
	return "", fmt.Errorf("unknown route profile %q (want urban, mixed or highway)", s)
}

// ParseFuelType validates a fuel type. Empty means gasoline.
func ParseFuelType(s string) (FuelType, error) {
	switch f := FuelType(s); f {
	case "":
		return FuelGasoline, nil
	case FuelGasoline, FuelDiesel:
		return f, nil
	}
	return "", fmt.Errorf("unknown fuel type %q (want gasoline or diesel)", s)
}
