// Package share renders a trip summary for export.
package share

import (
	"strconv"
	"strings"

	"github.com/mmynk/gastrip/internal/calculator"
	"github.com/mmynk/gastrip/internal/models"
)

// Title is used as the subject when the summary goes through a share sheet.
const Title = "Trip Expense Summary"

// Format renders the summary text. The split lines only appear when the
// cost is shared by more than one person.
func Format(in models.TripInputs, totals models.Totals, split models.SplitResult) string {
	var b strings.Builder

	b.WriteString("🚗 *Trip Summary - GasTrip*\n\n")
	b.WriteString("📍 Distance: " + calculator.FormatNumber(in.Distance) + " km\n")
	b.WriteString("⛽ Consumption: " + calculator.FormatNumber(in.Consumption) + " L/100km\n")
	b.WriteString("💸 TOTAL COST: *" + calculator.FormatMoney(totals.TotalCost) + " €*\n")

	if split.NumPeople > 1 {
		b.WriteString("👥 Split between: " + strconv.Itoa(split.NumPeople) + " people\n")
		b.WriteString("💳 EACH PAYS: *" + calculator.FormatMoney(split.CostPerPerson) + " €*\n")
	}

	b.WriteString("\nCalculated with GasTrip ✨")
	return b.String()
}

