// Package display renders command output for the terminal.
package display

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pterm/pterm"
)

// StatusPrinter prints human-facing progress lines
type StatusPrinter struct {
	out       io.Writer
	verbosity int
}

// NewStatusPrinter creates a StatusPrinter writing to out
func NewStatusPrinter(out io.Writer, verbosity int) *StatusPrinter {
	return &StatusPrinter{out: out, verbosity: verbosity}
}

// Fetching announces the puzzle being downloaded
func (p *StatusPrinter) Fetching(label string) {
	if p.verbosity >= 1 {
		pterm.Fprintln(p.out, fmt.Sprintf("🔄 Fetching %s", pterm.LightCyan(label)))
	}
}

// Written lists the files produced by a download, relative to root where possible
func (p *StatusPrinter) Written(root string, files []string) {
	for _, file := range files {
		if rel, err := filepath.Rel(root, file); err == nil {
			file = rel
		}
		pterm.Fprintln(p.out, fmt.Sprintf("✅ Wrote %s", pterm.Green(file)))
	}
}

// Done prints the closing summary
func (p *StatusPrinter) Done(title string, examples int) {
	pterm.Success.WithWriter(p.out).Printfln("%s (%d examples)", title, examples)
}

// Hint prints a one-line hint without decoration
func (p *StatusPrinter) Hint(message string) {
	fmt.Fprintln(p.out, message)
}
