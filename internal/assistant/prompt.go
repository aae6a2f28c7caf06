package assistant

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/mmynk/gastrip/internal/calculator"
	"github.com/mmynk/gastrip/internal/models"
)

const helperInstruction = "You are a travel data assistant. Answer only with the requested number " +
	"(decimals use a period). Do not include text, units or explanations."

const insightsInstruction = "You are a driving efficiency expert. Generate exactly 3 brief tips in JSON " +
	"on how to save fuel specifically on this type of trip. " +
	"Format: [{title, tip, impact: 'low'|'medium'|'high'}]"

// insightsSchema constrains insights output to an array of tip records.
var insightsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":  {Type: genai.TypeString},
			"tip":    {Type: genai.TypeString},
			"impact": {Type: genai.TypeString, Enum: []string{"low", "medium", "high"}},
		},
		Required: []string{"title", "tip", "impact"},
	},
}

// HelperPrompt returns the question asked for a query.
// Distance prompts always ask for a single leg, whatever the trip type.
func HelperPrompt(q models.Query) string {
	switch q := q.(type) {
	case models.DistanceQuery:
		return fmt.Sprintf("How many kilometers by road between %s and %s? Return the distance for ONLY ONE LEG.",
			q.Origin, q.Destination)
	case models.ConsumptionQuery:
		return fmt.Sprintf("Estimate the real average consumption in L/100km for a car model '%s' in cycle '%s'.",
			q.Vehicle, q.RouteProfile)
	case models.PriceQuery:
		return fmt.Sprintf("What is the current average price per liter of %s in the city of %s? Search for real data from today.",
			q.FuelType, q.Location)
	default:
		return ""
	}
}

// BuildHelperRequest builds the backend request for a helper query.
// Distance and price depend on current real-world data, so they enable search.
func BuildHelperRequest(q models.Query) Request {
	kind := q.Kind()
	return Request{
		Prompt:            HelperPrompt(q),
		SystemInstruction: helperInstruction,
		Search:            kind == models.HelperDistance || kind == models.HelperPrice,
	}
}

// InsightsPrompt describes the trip to analyze.
func InsightsPrompt(in models.TripInputs) string {
	return fmt.Sprintf("Analyze this trip: %skm, %sL/100km, %s€/L.",
		calculator.FormatNumber(in.Distance),
		calculator.FormatNumber(in.Consumption),
		calculator.FormatNumber(in.Price),
	)
}

// BuildInsightsRequest builds the structured-output request for insights.
func BuildInsightsRequest(in models.TripInputs) Request {
	return Request{
		Prompt:            InsightsPrompt(in),
		SystemInstruction: insightsInstruction,
		ResponseSchema:    insightsSchema,
	}
}
