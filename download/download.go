// Package download fetches one puzzle and writes its artifacts.
package download

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/aocget/errors"
	"github.com/teranos/aocget/logger"
	"github.com/teranos/aocget/output"
	"github.com/teranos/aocget/puzzle"
)

// Result describes a completed download
type Result struct {
	ID       puzzle.ID
	Title    string
	URL      string
	Examples int
	Files    []string
}

// Run fetches id and writes it with w. Nothing is written when the fetch
// fails; a write failure leaves earlier files in place.
func Run(ctx context.Context, fetcher puzzle.Fetcher, w *output.Writer, id puzzle.ID, log *zap.SugaredLogger) (*Result, error) {
	log = logger.PuzzleLogger(log, id.Year, id.Day)
	start := time.Now()

	data, err := fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", id)
	}
	log.Infow("Fetched puzzle",
		"title", data.Title,
		logger.FieldCount, len(data.Examples),
		logger.FieldBytes, len(data.Input))

	files, err := w.Write(data)
	if err != nil {
		log.Debugw("Write aborted", logger.FieldCount, len(files))
		return nil, errors.Wrapf(err, "write %s", id)
	}

	log.Infow("Download complete",
		logger.FieldCount, len(files),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return &Result{
		ID:       id,
		Title:    data.Title,
		URL:      data.URL,
		Examples: len(data.Examples),
		Files:    files,
	}, nil
}
