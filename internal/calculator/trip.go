package calculator

import "github.com/mmynk/gastrip/internal/models"

// CO2PerLiter is the kilograms of CO2 emitted by burning one liter of fuel.
const CO2PerLiter = 2.31

// Derive computes the trip totals from the raw inputs.
// Based on: liters = (distance / 100) × consumption, cost = liters × price.
// CostPerKm is 0 when the distance is 0 instead of dividing by zero.
func Derive(in models.TripInputs) models.Totals {
	totalLiters := (in.Distance / 100) * in.Consumption
	totalCost := totalLiters * in.Price

	costPerKm := 0.0
	if in.Distance > 0 {
		costPerKm = totalCost / in.Distance
	}

	return models.Totals{
		TotalLiters: totalLiters,
		TotalCost:   totalCost,
		CostPerKm:   costPerKm,
		CO2Kg:       totalLiters * CO2PerLiter,
	}
}
