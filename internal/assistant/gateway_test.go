package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/gastrip/internal/models"
)

// stubGenerator returns a canned answer and records the last request.
type stubGenerator struct {
	text string
	err  error
	last Request
	hits int
}

func (s *stubGenerator) Generate(_ context.Context, req Request) (string, error) {
	s.last = req
	s.hits++
	return s.text, s.err
}

func TestGateway_RequestValue(t *testing.T) {
	ctx := context.Background()
	distance := models.DistanceQuery{Origin: "Madrid", Destination: "Toledo", TripType: models.RoundTrip}

	t.Run("extracts the number from prose", func(t *testing.T) {
		gen := &stubGenerator{text: "La distancia es de 342 km aproximadamente"}
		got, ok := New(gen).RequestValue(ctx, distance)
		if !ok || got != 342 {
			t.Errorf("RequestValue = (%v, %v), want (342, true)", got, ok)
		}
		if !gen.last.Search {
			t.Error("distance requests should enable search")
		}
	})

	t.Run("round trip is not doubled by the gateway", func(t *testing.T) {
		gen := &stubGenerator{text: "150"}
		got, ok := New(gen).RequestValue(ctx, distance)
		if !ok || got != 150 {
			t.Errorf("RequestValue = (%v, %v), want (150, true)", got, ok)
		}
	})

	t.Run("no number yields not found", func(t *testing.T) {
		gen := &stubGenerator{text: "No tengo datos"}
		if _, ok := New(gen).RequestValue(ctx, distance); ok {
			t.Error("expected ok=false")
		}
	})

	t.Run("backend error yields not found", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("network down")}
		if _, ok := New(gen).RequestValue(ctx, models.PriceQuery{Location: "Bilbao", FuelType: models.FuelGasoline}); ok {
			t.Error("expected ok=false")
		}
		if gen.hits != 1 {
			t.Errorf("generator called %d times, want exactly 1 (no retry)", gen.hits)
		}
	})

	t.Run("consumption does not enable search", func(t *testing.T) {
		gen := &stubGenerator{text: "5,8"}
		got, ok := New(gen).RequestValue(ctx, models.ConsumptionQuery{Vehicle: "Golf", RouteProfile: models.RouteMixed})
		if !ok || got != 5.8 {
			t.Errorf("RequestValue = (%v, %v), want (5.8, true)", got, ok)
		}
		if gen.last.Search {
			t.Error("consumption requests must not enable search")
		}
	})

	t.Run("disabled generator yields not found", func(t *testing.T) {
		if _, ok := New(nil).RequestValue(ctx, distance); ok {
			t.Error("expected ok=false without a generator")
		}
	})
}

func TestGateway_RequestInsights(t *testing.T) {
	ctx := context.Background()
	trip := models.TripInputs{Distance: 450, Consumption: 6.5, Price: 1.55}

	t.Run("parses structured tips", func(t *testing.T) {
		gen := &stubGenerator{text: `[{"title":"Cruise","tip":"Use cruise control","impact":"medium"}]`}
		got := New(gen).RequestInsights(ctx, trip)
		if len(got) != 1 || got[0].Title != "Cruise" {
			t.Errorf("RequestInsights = %+v, want one Cruise tip", got)
		}
		if gen.last.ResponseSchema == nil {
			t.Error("insights should request structured output")
		}
	})

	t.Run("malformed JSON yields empty slice", func(t *testing.T) {
		gen := &stubGenerator{text: `[{"title":`}
		got := New(gen).RequestInsights(ctx, trip)
		if got == nil || len(got) != 0 {
			t.Errorf("RequestInsights = %#v, want empty non-nil slice", got)
		}
	})

	t.Run("backend error yields empty slice", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("quota exceeded")}
		got := New(gen).RequestInsights(ctx, trip)
		if len(got) != 0 {
			t.Errorf("RequestInsights = %+v, want empty", got)
		}
	})

	t.Run("null yields empty slice", func(t *testing.T) {
		got := New(&stubGenerator{text: "null"}).RequestInsights(ctx, trip)
		if got == nil || len(got) != 0 {
			t.Errorf("RequestInsights = %#v, want empty non-nil slice", got)
		}
	})
}

func tripForTest() models.TripInputs {
	return models.TripInputs{Distance: 100, Consumption: 5, Price: 1.5}
}

func distanceForTest() models.Query {
	return models.DistanceQuery{Origin: "Leon", Destination: "Burgos"}
}
