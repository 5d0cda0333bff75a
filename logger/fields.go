package logger

import (
	"go.uber.org/zap"
)

// Standard field names for structured logging.
const (
	// Puzzle identity
	FieldYear = "year"
	FieldDay  = "day"

	// HTTP
	FieldURL    = "url"
	FieldStatus = "status"
	FieldBytes  = "bytes"

	// Files
	FieldPath   = "path"
	FieldLayout = "layout"
	FieldCount  = "count"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	client := aoc.NewClient(cfg, logger.ComponentLogger("aoc"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// PuzzleLogger returns a child logger tagged with the puzzle identity.
func PuzzleLogger(parent *zap.SugaredLogger, year, day int) *zap.SugaredLogger {
	return parent.With(FieldYear, year, FieldDay, day)
}
