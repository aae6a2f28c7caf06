package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/gastrip/internal/calculator"
	"github.com/mmynk/gastrip/internal/models"
)

// RunHelper asks the assistant for one missing input and stores it.
// Round trips double the one-leg distance returned by the assistant.
// While a helper call is in flight, further calls fail with ErrHelperBusy.
func (s *Session) RunHelper(ctx context.Context, q models.Query) (float64, error) {
	if err := validateQuery(q); err != nil {
		return 0, err
	}
	if !s.helperBusy.CompareAndSwap(false, true) {
		return 0, ErrHelperBusy
	}
	defer s.helperBusy.Store(false)

	value, ok := s.assistant.RequestValue(ctx, q)
	if !ok {
		return 0, ErrValueUnavailable
	}
	if dq, isDistance := q.(models.DistanceQuery); isDistance && dq.TripType == models.RoundTrip {
		value *= 2
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = s.inputs.With(q.Kind().Field(), value)
	s.saveTripLocked(ctx)

	slog.Info("Helper value applied", "kind", q.Kind(), "value", value)
	return value, nil
}

// HelperBusy reports whether a helper call is in flight.
func (s *Session) HelperBusy() bool {
	return s.helperBusy.Load()
}

// GenerateInsights asks the assistant for tips about the current trip and
// holds them in the session. An empty result is kept as is.
func (s *Session) GenerateInsights(ctx context.Context) ([]models.Insight, error) {
	in := s.Inputs()
	if calculator.Derive(in).TotalCost == 0 {
		return nil, ErrEmptyTrip
	}
	if !s.insightsBusy.CompareAndSwap(false, true) {
		return nil, ErrInsightsBusy
	}
	defer s.insightsBusy.Store(false)

	insights := s.assistant.RequestInsights(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights = copyInsights(insights)
	slog.Info("Insights generated", "count", len(insights))
	return copyInsights(insights), nil
}

// InsightsBusy reports whether an insights call is in flight.
func (s *Session) InsightsBusy() bool {
	return s.insightsBusy.Load()
}

func validateQuery(q models.Query) error {
	var missing []string
	switch q := q.(type) {
	case models.DistanceQuery:
		if blank(q.Origin) {
			missing = append(missing, "origin")
		}
		if blank(q.Destination) {
			missing = append(missing, "destination")
		}
	case models.ConsumptionQuery:
		if blank(q.Vehicle) {
			missing = append(missing, "vehicle")
		}
	case models.PriceQuery:
		if blank(q.Location) {
			missing = append(missing, "location")
		}
	case nil:
		return fmt.Errorf("%w: no query", ErrIncompleteQuery)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrIncompleteQuery, strings.Join(missing, ", "))
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
