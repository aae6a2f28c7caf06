package calculator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// floatPrefix matches the leading floating-point literal of a string,
// so "12.5 km" parses as 12.5 the way a lenient form field expects.
var floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber normalizes user input into a finite number.
// Strings may use a comma as decimal separator ("12,5"); only the first comma
// is replaced, thousands separators are not supported.
// Anything unparseable yields 0.
func ParseNumber(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case string:
		return parseString(v)
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return 0
	}
}

func parseString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.Replace(s, ",", ".", 1)

	literal := floatPrefix.FindString(s)
	if literal == "" {
		return 0
	}
	n, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		// Out of range exponents land here.
		return 0
	}
	return finite(n)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
