package calculator

import (
	"math"
	"testing"
)

func TestSplitCost(t *testing.T) {
	tests := []struct {
		name      string
		totalCost float64
		numPeople int
		want      float64
	}{
		{name: "one person pays the total", totalCost: 45.3375, numPeople: 1, want: 45.3375},
		{name: "four people share 100", totalCost: 100, numPeople: 4, want: 25},
		{name: "three people share 10", totalCost: 10, numPeople: 3, want: 10.0 / 3.0},
		{name: "zero people falls back to total", totalCost: 12, numPeople: 0, want: 12},
		{name: "negative people falls back to total", totalCost: 12, numPeople: -2, want: 12},
		{name: "zero cost", totalCost: 0, numPeople: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCost(tt.totalCost, tt.numPeople)
			if got != tt.want {
				t.Errorf("SplitCost(%v, %d) = %v, want %v", tt.totalCost, tt.numPeople, got, tt.want)
			}
		})
	}
}

func TestSplitCost_OnePersonIsExact(t *testing.T) {
	// Values that would drift if divided by 1.0 through another path.
	for _, total := range []float64{0.1 + 0.2, 1e-9, 123456.789, math.MaxFloat64} {
		if got := SplitCost(total, 1); got != total {
			t.Errorf("SplitCost(%v, 1) = %v, want exact total", total, got)
		}
	}
}

func TestSplit(t *testing.T) {
	res := Split(90, 3)
	if res.NumPeople != 3 {
		t.Errorf("NumPeople = %d, want 3", res.NumPeople)
	}
	if math.Abs(res.CostPerPerson-30) > 1e-9 {
		t.Errorf("CostPerPerson = %v, want 30", res.CostPerPerson)
	}

	clamped := Split(90, 0)
	if clamped.NumPeople != 1 {
		t.Errorf("NumPeople = %d, want clamped to 1", clamped.NumPeople)
	}
	if clamped.CostPerPerson != 90 {
		t.Errorf("CostPerPerson = %v, want 90", clamped.CostPerPerson)
	}
}
