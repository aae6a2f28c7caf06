// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/gastrip/internal/models"
)

// Store defines the interface for local trip persistence.
// This is a convenience cache, not a system of record: callers treat any
// load error as "no saved data" and never surface save errors to the user.
type Store interface {
	// LoadTrip returns the saved trip inputs.
	// Returns nil and no error if nothing is saved or the saved blob cannot
	// be decoded under the current schema version.
	LoadTrip(ctx context.Context) (*models.TripInputs, error)

	// SaveTrip replaces the saved trip inputs.
	SaveTrip(ctx context.Context, in models.TripInputs) error

	// LoadTheme returns the saved theme, or "" if none is saved.
	LoadTheme(ctx context.Context) (models.Theme, error)

	// SaveTheme replaces the saved theme.
	SaveTheme(ctx context.Context, theme models.Theme) error

	// Close releases any resources held by the store.
	Close() error
}
