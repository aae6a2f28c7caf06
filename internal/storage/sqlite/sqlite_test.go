package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/gastrip/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "gastrip-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("LoadTrip returns nil when nothing is saved", func(t *testing.T) {
		got, err := store.LoadTrip(ctx)
		if err != nil {
			t.Fatalf("LoadTrip failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil trip, got %+v", got)
		}
	})

	t.Run("SaveTrip then LoadTrip", func(t *testing.T) {
		want := models.TripInputs{Distance: 450, Consumption: 6.5, Price: 1.55}
		if err := store.SaveTrip(ctx, want); err != nil {
			t.Fatalf("SaveTrip failed: %v", err)
		}

		got, err := store.LoadTrip(ctx)
		if err != nil {
			t.Fatalf("LoadTrip failed: %v", err)
		}
		if got == nil || *got != want {
			t.Errorf("LoadTrip = %+v, want %+v", got, want)
		}
	})

	t.Run("SaveTrip replaces the previous blob", func(t *testing.T) {
		want := models.TripInputs{Distance: 10}
		if err := store.SaveTrip(ctx, want); err != nil {
			t.Fatalf("SaveTrip failed: %v", err)
		}
		got, err := store.LoadTrip(ctx)
		if err != nil {
			t.Fatalf("LoadTrip failed: %v", err)
		}
		if got == nil || *got != want {
			t.Errorf("LoadTrip = %+v, want %+v", got, want)
		}
	})

	t.Run("corrupt blob reads as no saved data", func(t *testing.T) {
		if err := store.put(ctx, TripKey(), "{not json"); err != nil {
			t.Fatalf("put failed: %v", err)
		}
		got, err := store.LoadTrip(ctx)
		if err != nil {
			t.Fatalf("LoadTrip failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil trip for corrupt blob, got %+v", got)
		}
	})

	t.Run("missing fields default to zero", func(t *testing.T) {
		if err := store.put(ctx, TripKey(), `{"distance": 120}`); err != nil {
			t.Fatalf("put failed: %v", err)
		}
		got, err := store.LoadTrip(ctx)
		if err != nil {
			t.Fatalf("LoadTrip failed: %v", err)
		}
		want := models.TripInputs{Distance: 120}
		if got == nil || *got != want {
			t.Errorf("LoadTrip = %+v, want %+v", got, want)
		}
	})

	t.Run("older schema versions are ignored", func(t *testing.T) {
		fresh := newTestStore(t)
		if err := fresh.put(ctx, "trip_data_v3", `{"distance": 99}`); err != nil {
			t.Fatalf("put failed: %v", err)
		}
		got, err := fresh.LoadTrip(ctx)
		if err != nil {
			t.Fatalf("LoadTrip failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected old schema to be ignored, got %+v", got)
		}
	})

	t.Run("theme round trip", func(t *testing.T) {
		theme, err := store.LoadTheme(ctx)
		if err != nil {
			t.Fatalf("LoadTheme failed: %v", err)
		}
		if theme != "" {
			t.Errorf("Expected no theme, got %q", theme)
		}

		if err := store.SaveTheme(ctx, models.ThemeDark); err != nil {
			t.Fatalf("SaveTheme failed: %v", err)
		}
		theme, err = store.LoadTheme(ctx)
		if err != nil {
			t.Fatalf("LoadTheme failed: %v", err)
		}
		if theme != models.ThemeDark {
			t.Errorf("LoadTheme = %q, want dark", theme)
		}
	})

	t.Run("unknown theme reads as none", func(t *testing.T) {
		if err := store.put(ctx, themeKey, "sepia"); err != nil {
			t.Fatalf("put failed: %v", err)
		}
		theme, err := store.LoadTheme(ctx)
		if err != nil {
			t.Fatalf("LoadTheme failed: %v", err)
		}
		if theme != "" {
			t.Errorf("LoadTheme = %q, want empty", theme)
		}
	})
}

func TestTripKey(t *testing.T) {
	if got := TripKey(); got != "trip_data_v4" {
		t.Errorf("TripKey() = %q, want trip_data_v4", got)
	}
}

func TestNew_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "gastrip.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	want := models.TripInputs{Distance: 300, Consumption: 5, Price: 1.7}
	if err := store.SaveTrip(ctx, want); err != nil {
		t.Fatalf("SaveTrip failed: %v", err)
	}
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.LoadTrip(ctx)
	if err != nil {
		t.Fatalf("LoadTrip failed: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("LoadTrip = %+v, want %+v", got, want)
	}
}
