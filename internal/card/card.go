// Package card defines the flashcard value type and its one-line file format.
package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator joins the fields of a serialized card.
const Separator = ":::"

// ErrMalformedLine indicates a card line that does not split into term, definition and an
// integer error count.
var ErrMalformedLine = errors.New("card: malformed line")

// Card is a term/definition pair plus the number of wrong answers given for it.
type Card struct {
	Term       string
	Definition string
	Errors     int
}

// New returns a card with no recorded errors.
func New(term, definition string) Card {
	return Card{Term: term, Definition: definition}
}

// String renders the card as term:::definition:::errors.
func (c Card) String() string {
	return c.Term + Separator + c.Definition + Separator + strconv.Itoa(c.Errors)
}

// Parse is the inverse of String.
func Parse(line string) (Card, error) {
	fields := strings.Split(line, Separator)
	if len(fields) != 3 {
		return Card{}, fmt.Errorf("%w: expected 3 fields, got %d in %q", ErrMalformedLine, len(fields), line)
	}

	errCount, err := strconv.Atoi(fields[2])
	if err != nil {
		return Card{}, fmt.Errorf("%w: error count %q is not an integer", ErrMalformedLine, fields[2])
	}
	if errCount < 0 {
		return Card{}, fmt.Errorf("%w: error count %d is negative", ErrMalformedLine, errCount)
	}

	return Card{Term: fields[0], Definition: fields[1], Errors: errCount}, nil
}

// ParseLines parses every line, failing on the first malformed one. A trailing empty line left
// by a final newline is skipped.
func ParseLines(lines []string) ([]Card, error) {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		c, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatLines renders cards one per line, in order.
func FormatLines(cards []Card) []string {
	lines := make([]string, 0, len(cards))
	for _, c := range cards {
		lines = append(lines, c.String())
	}
	return lines
}
