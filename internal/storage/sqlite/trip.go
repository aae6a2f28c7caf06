package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mmynk/gastrip/internal/models"
)

// TripSchemaVersion is embedded in the trip key. Bump it whenever the stored
// shape changes so blobs written by older versions are never read back.
const TripSchemaVersion = 4

var tripKey = fmt.Sprintf("trip_data_v%d", TripSchemaVersion)

const themeKey = "theme"

// TripKey returns the key the trip inputs are stored under.
func TripKey() string {
	return tripKey
}

// LoadTrip retrieves the saved trip inputs.
func (s *SQLiteStore) LoadTrip(ctx context.Context) (*models.TripInputs, error) {
	raw, ok, err := s.get(ctx, tripKey)
	if err != nil || !ok {
		return nil, err
	}

	in := &models.TripInputs{}
	if err := json.Unmarshal([]byte(raw), in); err != nil {
		slog.Warn("Ignoring unreadable saved trip", "key", tripKey, "error", err)
		return nil, nil
	}
	return in, nil
}

// SaveTrip replaces the saved trip inputs.
func (s *SQLiteStore) SaveTrip(ctx context.Context, in models.TripInputs) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode trip: %w", err)
	}
	return s.put(ctx, tripKey, string(data))
}

// LoadTheme retrieves the saved theme. Unknown values read back as "".
func (s *SQLiteStore) LoadTheme(ctx context.Context) (models.Theme, error) {
	raw, ok, err := s.get(ctx, themeKey)
	if err != nil || !ok {
		return "", err
	}

	theme, err := models.ParseTheme(raw)
	if err != nil {
		slog.Warn("Ignoring unknown saved theme", "value", raw)
		return "", nil
	}
	return theme, nil
}

// SaveTheme replaces the saved theme.
func (s *SQLiteStore) SaveTheme(ctx context.Context, theme models.Theme) error {
	return s.put(ctx, themeKey, string(theme))
}
