// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.SetupFromConfig(cfg.Log.Level)   // config level, LOG_LEVEL wins
//	logging.SetupWithLevel(slog.LevelDebug)  // explicit level override
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// SetupFromConfig configures colored logging at the configured level unless
// LOG_LEVEL is set.
func SetupFromConfig(level string) {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	SetupWithLevel(ParseLevel(level))
}

// SetupWithLevel configures colored logging at the given level.
// Logs go to stderr so command output on stdout stays clean.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

// ParseLevel maps a level name to a slog level. Unknown names mean INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
