// Package transcript records everything shown to and typed by the user during a session.
package transcript

import (
	"fmt"
	"io"
	"slices"

	"github.com/choplin/flashcards/internal/filesystem"
)

// Transcript prints lines to an output and keeps an append-only copy of them together with
// the user's input lines.
type Transcript struct {
	out   io.Writer
	lines []string
}

// New returns a transcript that prints to out.
func New(out io.Writer) *Transcript {
	return &Transcript{out: out}
}

// Print writes line to the output and records it.
func (t *Transcript) Print(line string) error {
	t.lines = append(t.lines, line)
	if _, err := fmt.Fprintln(t.out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Printf formats and prints a line.
func (t *Transcript) Printf(format string, args ...any) error {
	return t.Print(fmt.Sprintf(format, args...))
}

// Record keeps a line without printing it. Used for echoing user input into the log.
func (t *Transcript) Record(line string) {
	t.lines = append(t.lines, line)
}

// Lines returns a copy of everything recorded so far.
func (t *Transcript) Lines() []string {
	return slices.Clone(t.lines)
}

// Save overwrites path with the recorded lines, newline-joined.
func (t *Transcript) Save(path string) error {
	return filesystem.WriteLines(path, t.lines)
}
