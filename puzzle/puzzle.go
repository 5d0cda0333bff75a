// Package puzzle defines the Advent of Code data handed from a data source
// to the output writers.
package puzzle

import (
	"context"
	"fmt"
	"time"

	"github.com/teranos/aocget/errors"
)

// FirstYear is the first Advent of Code event
const FirstYear = 2015

// LastDay is the highest day number accepted
const LastDay = 25

// Field names of an example record, as written to EXAMPLES.toml
const (
	FieldInputData = "input_data"
	FieldAnswerA   = "answer_a"
	FieldAnswerB   = "answer_b"
	FieldExtra     = "extra"
)

// unlockZone is the fixed UTC-5 offset puzzles unlock in (midnight US-Eastern in December)
var unlockZone = time.FixedZone("EST", -5*60*60)

// ID selects one puzzle
type ID struct {
	Year int
	Day  int
}

// Validate rejects days outside 1..25 and years before the first event
func (id ID) Validate() error {
	if id.Day < 1 || id.Day > LastDay {
		return errors.NewInvalidRequestError("day must be between 1 and %d, got %d", LastDay, id.Day)
	}
	if id.Year < FirstYear {
		return errors.NewInvalidRequestError("year must be %d or later, got %d", FirstYear, id.Year)
	}
	return nil
}

// UnlockTime returns when the puzzle is released
func (id ID) UnlockTime() time.Time {
	return time.Date(id.Year, time.December, id.Day, 0, 0, 0, 0, unlockZone)
}

// Unlocked reports whether the puzzle has been released at now
func (id ID) Unlocked(now time.Time) bool {
	return !now.Before(id.UnlockTime())
}

func (id ID) String() string {
	return fmt.Sprintf("%d day %d", id.Year, id.Day)
}

// Example is one sample input with its expected answers. Nil fields are absent.
type Example struct {
	InputData *string
	AnswerA   *string
	AnswerB   *string
	Extra     *string
}

// Fields returns the present fields keyed by their record names.
// An example with no present fields yields an empty, non-nil map.
func (e Example) Fields() map[string]string {
	fields := make(map[string]string, 4)
	if e.InputData != nil {
		fields[FieldInputData] = *e.InputData
	}
	if e.AnswerA != nil {
		fields[FieldAnswerA] = *e.AnswerA
	}
	if e.AnswerB != nil {
		fields[FieldAnswerB] = *e.AnswerB
	}
	if e.Extra != nil {
		fields[FieldExtra] = *e.Extra
	}
	return fields
}

// Data is everything fetched for one puzzle
type Data struct {
	ID       ID
	Title    string
	URL      string
	Input    string
	Examples []Example
}

// Fetcher obtains puzzle data from some source
type Fetcher interface {
	Fetch(ctx context.Context, id ID) (*Data, error)
}
