package session

import (
	"context"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/choplin/flashcards/internal/card"
)

const (
	defaultWidth   = 80
	minColumnWidth = 10
	// Borders and padding for three columns.
	tableOverhead = 10
	errorsColumn  = 6
)

func (s *Session) view(_ context.Context) error {
	cards := s.deck.Cards()
	if len(cards) == 0 {
		return s.transcript.Print("There are no cards.")
	}

	rendered := renderCards(cards, s.terminalWidth())
	for _, line := range strings.Split(rendered, "\n") {
		if err := s.transcript.Print(line); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) terminalWidth() int {
	if s.width > 0 {
		return s.width
	}
	if f, ok := s.out.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

// renderCards lays the cards out as a table. Terms get at most half of the free width, the
// definition column takes the rest, and longer text wraps onto further lines.
func renderCards(cards []card.Card, width int) string {
	available := width - tableOverhead - errorsColumn

	maxTerm := 0
	for _, c := range cards {
		maxTerm = max(maxTerm, runewidth.StringWidth(c.Term))
	}
	termWidth := max(min(maxTerm, available/2), minColumnWidth)
	defWidth := max(available-termWidth, minColumnWidth)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: termWidth, WidthMaxEnforcer: text.WrapSoft},
		{Number: 2, WidthMax: defWidth, WidthMaxEnforcer: text.WrapSoft},
	})
	t.AppendHeader(table.Row{"Term", "Definition", "Errors"})
	for _, c := range cards {
		t.AppendRow(table.Row{c.Term, c.Definition, c.Errors})
	}
	return t.Render()
}
