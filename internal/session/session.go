// Package session owns the application state of one GasTrip user: the trip
// inputs, the held insights, the party size and the theme.
//
// All mutations go through a Session. Trip inputs and theme are persisted
// after every change; save failures are logged, never returned.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/mmynk/gastrip/internal/calculator"
	"github.com/mmynk/gastrip/internal/models"
	"github.com/mmynk/gastrip/internal/share"
	"github.com/mmynk/gastrip/internal/storage"
	"github.com/mmynk/gastrip/pkg/metrics"
)

var (
	ErrHelperBusy       = errors.New("a helper request is already in progress")
	ErrInsightsBusy     = errors.New("an insights request is already in progress")
	ErrValueUnavailable = errors.New("could not retrieve the value, try being more specific")
	ErrEmptyTrip        = errors.New("the trip has no cost yet")
	ErrMinPeople        = errors.New("party size cannot go below 1")
	ErrIncompleteQuery  = errors.New("incomplete query")
)

// Assistant estimates missing inputs and produces insights.
// Implementations never fail: they report "no value" or return no insights.
type Assistant interface {
	RequestValue(ctx context.Context, q models.Query) (float64, bool)
	RequestInsights(ctx context.Context, in models.TripInputs) []models.Insight
}

// State is a point-in-time copy of the session.
type State struct {
	Inputs   models.TripInputs
	Totals   models.Totals
	Split    models.SplitResult
	Insights []models.Insight
	Theme    models.Theme
}

// Session is the single controller of the application state.
type Session struct {
	store     storage.Store
	assistant Assistant

	mu        sync.Mutex
	inputs    models.TripInputs
	insights  []models.Insight
	numPeople int
	theme     models.Theme

	// One in-flight call per kind.
	helperBusy   atomic.Bool
	insightsBusy atomic.Bool
}

// New creates a session initialized from the store.
// Missing or unreadable saved data starts the session from zero inputs.
func New(ctx context.Context, store storage.Store, assistant Assistant) *Session {
	s := &Session{
		store:     store,
		assistant: assistant,
		numPeople: 1,
		theme:     models.ThemeLight,
	}

	in, err := store.LoadTrip(ctx)
	if err != nil {
		slog.Warn("Failed to load saved trip, starting empty", "error", err)
	} else if in != nil {
		s.inputs = in.NonNegative()
	}

	theme, err := store.LoadTheme(ctx)
	if err != nil {
		slog.Warn("Failed to load saved theme", "error", err)
	} else if theme != "" {
		s.theme = theme
	}

	slog.Debug("Session loaded",
		"distance", s.inputs.Distance,
		"consumption", s.inputs.Consumption,
		"price", s.inputs.Price,
		"theme", s.theme,
	)
	return s
}

// Inputs returns the current trip inputs.
func (s *Session) Inputs() models.TripInputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputs
}

// Totals derives the totals from the current inputs.
func (s *Session) Totals() models.Totals {
	return calculator.Derive(s.Inputs())
}

// Snapshot returns a copy of the whole session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := calculator.Derive(s.inputs)
	return State{
		Inputs:   s.inputs,
		Totals:   totals,
		Split:    calculator.Split(totals.TotalCost, s.numPeople),
		Insights: copyInsights(s.insights),
		Theme:    s.theme,
	}
}

// Update replaces one field with the parsed raw value and saves the trip.
func (s *Session) Update(ctx context.Context, field models.Field, raw any) models.TripInputs {
	value := calculator.ParseNumber(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = s.inputs.With(field, value)
	s.saveTripLocked(ctx)
	return s.inputs
}

// Reset zeroes every input and drops the held insights.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = models.TripInputs{}
	s.insights = nil
	s.saveTripLocked(ctx)
	slog.Info("Trip reset")
}

// Insights returns the insights held from the last analysis.
func (s *Session) Insights() []models.Insight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyInsights(s.insights)
}

// NumPeople returns the current party size.
func (s *Session) NumPeople() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.numPeople
}

// IncrementPeople adds one person to the party.
func (s *Session) IncrementPeople() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.numPeople++
	return s.numPeople
}

// DecrementPeople removes one person, refusing to go below 1.
func (s *Session) DecrementPeople() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.numPeople <= 1 {
		return s.numPeople, ErrMinPeople
	}
	s.numPeople--
	return s.numPeople, nil
}

// SetPeople sets the party size.
func (s *Session) SetPeople(n int) error {
	if n < 1 {
		return ErrMinPeople
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.numPeople = n
	return nil
}

// Split shares the current total cost across the party.
func (s *Session) Split() models.SplitResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.Split(calculator.Derive(s.inputs).TotalCost, s.numPeople)
}

// ShareText renders the export summary. A trip without cost has nothing to share.
func (s *Session) ShareText() (string, error) {
	state := s.Snapshot()
	if state.Totals.TotalCost == 0 {
		return "", ErrEmptyTrip
	}
	return share.Format(state.Inputs, state.Totals, state.Split), nil
}

// Theme returns the current theme.
func (s *Session) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme changes and saves the theme.
func (s *Session) SetTheme(ctx context.Context, theme models.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.saveThemeLocked(ctx)
}

// ToggleTheme switches between dark and light and returns the new theme.
func (s *Session) ToggleTheme(ctx context.Context) models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggle()
	s.saveThemeLocked(ctx)
	return s.theme
}

// saveTripLocked persists the inputs. Callers hold s.mu so writes keep the
// order of mutations. The save outlives a cancelled request context.
func (s *Session) saveTripLocked(ctx context.Context) {
	err := s.store.SaveTrip(context.WithoutCancel(ctx), s.inputs)
	metrics.RecordStoreWrite("trip", err)
	if err != nil {
		slog.Warn("Failed to save trip", "error", err)
	}
}

func (s *Session) saveThemeLocked(ctx context.Context) {
	err := s.store.SaveTheme(context.WithoutCancel(ctx), s.theme)
	metrics.RecordStoreWrite("theme", err)
	if err != nil {
		slog.Warn("Failed to save theme", "error", err)
	}
}

func copyInsights(in []models.Insight) []models.Insight {
	out := make([]models.Insight, len(in))
	copy(out, in)
	return out
}
