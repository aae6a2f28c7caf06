package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/gastrip/internal/models"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name         string
		in           models.TripInputs
		validateFunc func(t *testing.T, got models.Totals)
	}{
		{
			name: "long trip",
			in:   models.TripInputs{Distance: 450, Consumption: 6.5, Price: 1.55},
			validateFunc: func(t *testing.T, got models.Totals) {
				// liters = 4.5 * 6.5 = 29.25, cost = 29.25 * 1.55 = 45.3375
				if math.Abs(got.TotalLiters-29.25) > 1e-9 {
					t.Errorf("TotalLiters = %v, want 29.25", got.TotalLiters)
				}
				if math.Abs(got.TotalCost-45.3375) > 1e-9 {
					t.Errorf("TotalCost = %v, want 45.3375", got.TotalCost)
				}
				if math.Abs(got.CostPerKm-0.1007) > 0.0001 {
					t.Errorf("CostPerKm = %v, want ~0.1007", got.CostPerKm)
				}
				if math.Abs(got.CO2Kg-29.25*2.31) > 1e-9 {
					t.Errorf("CO2Kg = %v, want %v", got.CO2Kg, 29.25*2.31)
				}
			},
		},
		{
			name: "zero distance gives zero cost per km",
			in:   models.TripInputs{Distance: 0, Consumption: 8, Price: 2},
			validateFunc: func(t *testing.T, got models.Totals) {
				if got.CostPerKm != 0 {
					t.Errorf("CostPerKm = %v, want 0", got.CostPerKm)
				}
				if got.TotalLiters != 0 || got.TotalCost != 0 {
					t.Errorf("totals = %+v, want zero liters and cost", got)
				}
			},
		},
		{
			name: "zero price keeps liters",
			in:   models.TripInputs{Distance: 200, Consumption: 5, Price: 0},
			validateFunc: func(t *testing.T, got models.Totals) {
				if got.TotalLiters != 10 {
					t.Errorf("TotalLiters = %v, want 10", got.TotalLiters)
				}
				if got.TotalCost != 0 || got.CostPerKm != 0 {
					t.Errorf("totals = %+v, want zero cost", got)
				}
			},
		},
		{
			name: "all zero",
			in:   models.TripInputs{},
			validateFunc: func(t *testing.T, got models.Totals) {
				if got != (models.Totals{}) {
					t.Errorf("Derive(zero) = %+v, want zero totals", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Derive(tt.in))
		})
	}
}

func TestDerive_NonNegative(t *testing.T) {
	values := []float64{0, 0.01, 1, 6.5, 100, 1234.5}
	for _, d := range values {
		for _, c := range values {
			for _, p := range values {
				got := Derive(models.TripInputs{Distance: d, Consumption: c, Price: p})
				if got.TotalLiters < 0 || got.TotalCost < 0 || got.CostPerKm < 0 {
					t.Fatalf("Derive(%v, %v, %v) = %+v, want non-negative", d, c, p, got)
				}
				if got.TotalLiters != (d/100)*c {
					t.Fatalf("TotalLiters = %v, want %v", got.TotalLiters, (d/100)*c)
				}
				if got.TotalCost != got.TotalLiters*p {
					t.Fatalf("TotalCost = %v, want %v", got.TotalCost, got.TotalLiters*p)
				}
			}
		}
	}
}
