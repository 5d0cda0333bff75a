package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCause(t *testing.T) {
	original := New("connection reset")
	wrapped := Wrapf(original, "fetch input for day %d", 3)

	assert.Contains(t, wrapped.Error(), "fetch input for day 3")
	assert.Contains(t, wrapped.Error(), "connection reset")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found direct", ErrNotFound, IsNotFoundError, true},
		{"not found wrapped", Wrap(ErrNotFound, "no 05* directory"), IsNotFoundError, true},
		{"not found constructor", NewNotFoundError("day %02d", 5), IsNotFoundError, true},
		{"not found nil", nil, IsNotFoundError, false},
		{"invalid request constructor", NewInvalidRequestError("day %d out of range", 26), IsInvalidRequestError, true},
		{"invalid request unrelated", New("boom"), IsInvalidRequestError, false},
		{"unauthorized wrapped", Wrap(ErrUnauthorized, "status 400"), IsUnauthorizedError, true},
		{"locked wrapped", Wrap(ErrPuzzleLocked, "2030 day 1"), IsPuzzleLockedError, true},
		{"locked is not unauthorized", ErrPuzzleLocked, IsUnauthorizedError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrUnauthorized, "set AOC_SESSION")

	assert.Equal(t, "set AOC_SESSION", FlattenHints(err))
	assert.True(t, Is(err, ErrUnauthorized))

	err = WithHintf(Wrap(err, "fetch input"), "token file is %s", "~/.config/aocd/token")
	assert.Contains(t, FlattenHints(err), "set AOC_SESSION")
	assert.Contains(t, FlattenHints(err), "token file is ~/.config/aocd/token")
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
}

func ExampleWrap() {
	err := Wrap(ErrPuzzleLocked, "2023 day 1")
	fmt.Println(err)
	// Output: 2023 day 1: puzzle locked
}
