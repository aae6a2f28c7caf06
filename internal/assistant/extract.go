package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mmynk/gastrip/internal/models"
)

// numberPattern matches an integer or a decimal with a comma or period separator.
var numberPattern = regexp.MustCompile(`\d+[.,]?\d*`)

// ExtractNumber returns the first number found in free text.
// "La distancia es de 342 km" yields 342. Thousands separators are not
// understood: "1.234,5" yields 1.234.
func ExtractNumber(text string) (float64, bool) {
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	match = strings.Replace(match, ",", ".", 1)
	match = strings.TrimSuffix(match, ".")

	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseInsights decodes the backend JSON into insight records.
// Any record missing a field or carrying an unknown impact invalidates the
// whole answer.
func ParseInsights(text string) ([]models.Insight, error) {
	var insights []models.Insight
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		return nil, fmt.Errorf("invalid insights JSON: %w", err)
	}
	for i, ins := range insights {
		if strings.TrimSpace(ins.Title) == "" || strings.TrimSpace(ins.Tip) == "" {
			return nil, fmt.Errorf("insight %d: %w", i, errMissingField)
		}
		if !ins.Impact.Valid() {
			return nil, fmt.Errorf("insight %d: unknown impact %q", i, ins.Impact)
		}
	}
	return insights, nil
}

var errMissingField = errors.New("missing title or tip")
