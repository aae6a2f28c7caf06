// Package assistant asks a generative backend to estimate missing trip inputs
// and to produce fuel-saving insights.
//
// Every failure collapses to "no value" or "no insights": the gateway logs
// and counts failures but never returns them.
package assistant

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/gastrip/internal/models"
	"github.com/mmynk/gastrip/pkg/metrics"
)

// Gateway turns assistant queries into backend calls and parses the answers.
type Gateway struct {
	gen Generator
}

// New creates a Gateway over the given generator.
func New(gen Generator) *Gateway {
	if gen == nil {
		gen = Disabled()
	}
	return &Gateway{gen: gen}
}

// RequestValue asks the backend for one numeric input.
// For distance queries the value is always a single leg; doubling for round
// trips is the caller's job. Returns ok=false on any failure.
func (g *Gateway) RequestValue(ctx context.Context, q models.Query) (float64, bool) {
	start := time.Now()
	kind := string(q.Kind())

	text, err := g.gen.Generate(ctx, BuildHelperRequest(q))
	if err != nil {
		slog.Warn("Helper request failed", "kind", kind, "error", err)
		metrics.RecordAssistant("helper", kind, false, time.Since(start))
		return 0, false
	}

	value, ok := ExtractNumber(text)
	if !ok {
		slog.Warn("Helper answer has no number", "kind", kind, "answer", text)
	} else {
		slog.Debug("Helper answer", "kind", kind, "value", value)
	}
	metrics.RecordAssistant("helper", kind, ok, time.Since(start))
	return value, ok
}

// RequestInsights asks the backend for fuel-saving tips about a trip.
// Returns an empty slice on any failure.
func (g *Gateway) RequestInsights(ctx context.Context, in models.TripInputs) []models.Insight {
	start := time.Now()

	text, err := g.gen.Generate(ctx, BuildInsightsRequest(in))
	if err != nil {
		slog.Warn("Insights request failed", "error", err)
		metrics.RecordAssistant("insights", "insights", false, time.Since(start))
		return []models.Insight{}
	}

	insights, err := ParseInsights(text)
	if err != nil {
		slog.Warn("Insights answer rejected", "error", err)
		metrics.RecordAssistant("insights", "insights", false, time.Since(start))
		return []models.Insight{}
	}

	metrics.RecordAssistant("insights", "insights", true, time.Since(start))
	if insights == nil {
		return []models.Insight{}
	}
	return insights
}
