package calculator

import "strconv"

// FormatNumber renders a value with the shortest exact representation,
// so 450 prints as "450" and 6.5 as "6.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatMoney renders a value with two decimals.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
