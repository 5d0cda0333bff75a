// Package output writes fetched puzzle data into a day directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/teranos/aocget/config"
	"github.com/teranos/aocget/errors"
	"github.com/teranos/aocget/logger"
	"github.com/teranos/aocget/puzzle"
)

// Artifact file names
const (
	InputTOMLFile    = "INPUT.toml"
	ExamplesTOMLFile = "EXAMPLES.toml"
	InputTextFile    = "input.txt"
	ReadmeFile       = "README.md"
)

// Writer writes puzzle data using one of the configured layouts
type Writer struct {
	root      string
	layout    string
	inputMode string
	logger    *zap.SugaredLogger
}

// NewWriter creates a Writer from the output configuration
func NewWriter(cfg config.OutputConfig, log *zap.SugaredLogger) *Writer {
	return &Writer{
		root:      cfg.Root,
		layout:    cfg.Layout,
		inputMode: cfg.InputMode,
		logger:    log,
	}
}

// Write locates the day directory and writes every artifact of the layout
// into it. It returns the paths written so far, also on error.
func (w *Writer) Write(data *puzzle.Data) ([]string, error) {
	dir, err := Locate(w.root, data.ID)
	if err != nil {
		return nil, err
	}
	w.logger.Debugw("Resolved day directory", logger.FieldPath, dir, logger.FieldLayout, w.layout)

	switch w.layout {
	case config.LayoutTOML:
		return w.writeTOML(dir, data)
	case config.LayoutText:
		return w.writeText(dir, data)
	default:
		return nil, errors.NewInvalidRequestError("unknown output layout %q", w.layout)
	}
}

func (w *Writer) writeTOML(dir string, data *puzzle.Data) ([]string, error) {
	var written []string

	inputPath := filepath.Join(dir, InputTOMLFile)
	if err := WriteTOML(inputPath, ComposeInput(data.Input, w.inputMode == config.InputModeTokens)); err != nil {
		return written, err
	}
	written = append(written, inputPath)

	examplesPath := filepath.Join(dir, ExamplesTOMLFile)
	if err := WriteTOML(examplesPath, ComposeExamples(data.Examples)); err != nil {
		return written, err
	}
	written = append(written, examplesPath)

	w.logger.Infow("Wrote TOML artifacts", logger.FieldPath, dir, logger.FieldCount, len(data.Examples))
	return written, nil
}

func (w *Writer) writeText(dir string, data *puzzle.Data) ([]string, error) {
	var written []string

	write := func(name, content string) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), config.DefaultFilePermissions); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		written = append(written, path)
		return nil
	}

	if err := write(InputTextFile, data.Input); err != nil {
		return written, err
	}

	for i, example := range data.Examples {
		for _, file := range ExampleTextFiles(i, example) {
			if err := write(file.Name, file.Content); err != nil {
				return written, err
			}
		}
	}

	if err := write(ReadmeFile, Readme(data)); err != nil {
		return written, err
	}

	w.logger.Infow("Wrote text artifacts", logger.FieldPath, dir, logger.FieldCount, len(written))
	return written, nil
}

// WriteTOML encodes doc into path, replacing any existing file
func WriteTOML(path string, doc any) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.DefaultFilePermissions)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	if err := toml.NewEncoder(f).Encode(doc); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}

// TextFile is one discrete file of the text layout
type TextFile struct {
	Name    string
	Content string
}

// ExampleTextFiles returns the files for the example at 0-based index:
// example{N}input.txt, example{N}answerA.txt, example{N}answerB.txt and
// example{N}extra.txt, for present fields only.
func ExampleTextFiles(index int, example puzzle.Example) []TextFile {
	var files []TextFile
	add := func(field string, value *string) {
		if value != nil {
			files = append(files, TextFile{
				Name:    fmt.Sprintf("example%d%s.txt", index, field),
				Content: *value,
			})
		}
	}
	add("input", example.InputData)
	add("answerA", example.AnswerA)
	add("answerB", example.AnswerB)
	add("extra", example.Extra)
	return files
}

// Readme renders README.md with the title, day label and puzzle link
func Readme(data *puzzle.Data) string {
	return fmt.Sprintf("# %s\n\n**Advent of Code: Day %d, %d**\n\nSee %s\n",
		data.Title, data.ID.Day, data.ID.Year, data.URL)
}
