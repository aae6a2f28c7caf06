package calculator

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{name: "nil", raw: nil, want: 0},
		{name: "empty string", raw: "", want: 0},
		{name: "blank string", raw: "   ", want: 0},
		{name: "comma decimal", raw: "12,5", want: 12.5},
		{name: "period decimal", raw: "12.5", want: 12.5},
		{name: "surrounding spaces", raw: "  7,25 ", want: 7.25},
		{name: "letters", raw: "abc", want: 0},
		{name: "trailing unit", raw: "450 km", want: 450},
		{name: "leading dot", raw: ".5", want: 0.5},
		{name: "trailing dot", raw: "12.", want: 12},
		{name: "only first comma replaced", raw: "1,234,5", want: 1.234},
		{name: "exponent", raw: "1e3", want: 1000},
		{name: "overflow", raw: "1e400", want: 0},
		{name: "infinity text", raw: "Infinity", want: 0},
		{name: "float64", raw: 3.75, want: 3.75},
		{name: "float64 NaN", raw: math.NaN(), want: 0},
		{name: "float64 Inf", raw: math.Inf(1), want: 0},
		{name: "float32", raw: float32(2.5), want: 2.5},
		{name: "int", raw: 42, want: 42},
		{name: "int64", raw: int64(-3), want: -3},
		{name: "uint8", raw: uint8(9), want: 9},
		{name: "unsupported type", raw: []int{1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumber(tt.raw)
			if got != tt.want {
				t.Errorf("ParseNumber(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
