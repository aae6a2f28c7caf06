package models

import "fmt"

// TripInputs holds the raw values entered by the user.
// All fields default to zero when absent or unparseable.
type TripInputs struct {
	// Distance is the trip length in kilometers.
	Distance float64 `json:"distance"`

	// Consumption is the vehicle consumption in liters per 100 km.
	Consumption float64 `json:"consumption"`

	// Price is the fuel price in currency per liter.
	Price float64 `json:"price"`
}

// Totals are the values derived from TripInputs.
// They are recomputed on every read and never persisted.
type Totals struct {
	// TotalLiters is (distance / 100) × consumption.
	TotalLiters float64 `json:"total_liters"`

	// TotalCost is TotalLiters × price.
	TotalCost float64 `json:"total_cost"`

	// CostPerKm is TotalCost / distance, or 0 when distance is 0.
	CostPerKm float64 `json:"cost_per_km"`

	// CO2Kg is the estimated CO2 emitted, in kilograms.
	CO2Kg float64 `json:"co2_kg"`
}

// SplitResult is the total cost shared across a party.
type SplitResult struct {
	// NumPeople is the party size, always at least 1.
	NumPeople int `json:"num_people"`

	// CostPerPerson is the exact quotient of total cost by NumPeople.
	CostPerPerson float64 `json:"cost_per_person"`
}

// Field names one of the three trip inputs.
type Field string

const (
	FieldDistance    Field = "distance"
	FieldConsumption Field = "consumption"
	FieldPrice       Field = "price"
)

// ParseField validates a field name coming from the CLI or the RPC surface.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldDistance, FieldConsumption, FieldPrice:
		return f, nil
	}
	return "", fmt.Errorf("unknown field %q (want distance, consumption or price)", s)
}

// With returns a copy of the inputs with exactly one field replaced.
// Negative values are stored as 0.
func (t TripInputs) With(field Field, value float64) TripInputs {
	value = max(value, 0)
	switch field {
	case FieldDistance:
		t.Distance = value
	case FieldConsumption:
		t.Consumption = value
	case FieldPrice:
		t.Price = value
	}
	return t
}

// NonNegative returns a copy with every negative field set to 0.
func (t TripInputs) NonNegative() TripInputs {
	return TripInputs{
		Distance:    max(t.Distance, 0),
		Consumption: max(t.Consumption, 0),
		Price:       max(t.Price, 0),
	}
}

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
