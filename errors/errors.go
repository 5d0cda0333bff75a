// Package errors provides error handling for aocget.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints
//
// Usage:
//
//	// Wrap with context
//	if err := fetch(); err != nil {
//	    return errors.Wrap(err, "failed to fetch puzzle input")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "set AOC_SESSION to your session cookie")
//
//	// Check errors
//	if errors.Is(err, errors.ErrPuzzleLocked) {
//	    // puzzle not released yet
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

// User-facing hints
var (
	WithHint  = crdb.WithHint
	WithHintf = crdb.WithHintf
)

// Error inspection
var (
	Is           = crdb.Is
	FlattenHints = crdb.FlattenHints
)

// Sentinel errors. Wrap these with errors.Wrap() to add context while
// keeping errors.Is() working.
var (
	// ErrNotFound indicates the requested puzzle, input or directory does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates malformed input (bad year/day, bad config value)
	ErrInvalidRequest = New("invalid request")

	// ErrUnauthorized indicates a missing or rejected session token
	ErrUnauthorized = New("unauthorized")

	// ErrPuzzleLocked indicates the puzzle has not been released yet
	ErrPuzzleLocked = New("puzzle locked")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsUnauthorizedError checks if an error is or wraps ErrUnauthorized
func IsUnauthorizedError(err error) bool {
	return err != nil && Is(err, ErrUnauthorized)
}

// IsPuzzleLockedError checks if an error is or wraps ErrPuzzleLocked
func IsPuzzleLockedError(err error) bool {
	return err != nil && Is(err, ErrPuzzleLocked)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}
