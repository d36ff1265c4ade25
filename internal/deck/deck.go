// Package deck holds the ordered, in-memory collection of flashcards.
package deck

import (
	"slices"

	"github.com/choplin/flashcards/internal/card"
)

// Deck keeps cards in insertion order. Terms are unique, and definitions are unique for cards
// added through Add.
type Deck struct {
	cards []card.Card
}

// New returns an empty deck.
func New() *Deck {
	return &Deck{}
}

// Len reports the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the cards in deck order.
func (d *Deck) Cards() []card.Card {
	return slices.Clone(d.cards)
}

// HasTerm reports whether a card with the given term exists.
func (d *Deck) HasTerm(term string) bool {
	return d.indexOfTerm(term) >= 0
}

// HasDefinition reports whether a card with the given definition exists.
func (d *Deck) HasDefinition(definition string) bool {
	_, ok := d.FindByDefinition(definition)
	return ok
}

// Add appends a new card with zero errors.
func (d *Deck) Add(term, definition string) error {
	if d.HasTerm(term) {
		return ErrDuplicateTerm
	}
	if d.HasDefinition(definition) {
		return ErrDuplicateDefinition
	}
	d.cards = append(d.cards, card.New(term, definition))
	return nil
}

// Remove deletes the card with the given term and reports whether one was found.
func (d *Deck) Remove(term string) bool {
	idx := d.indexOfTerm(term)
	if idx < 0 {
		return false
	}
	d.cards = slices.Delete(d.cards, idx, idx+1)
	return true
}

// Merge drops every existing card whose term appears in incoming, then appends incoming in
// order. Definition collisions are not checked. It returns the number of cards appended.
func (d *Deck) Merge(incoming []card.Card) int {
	replaced := make(map[string]struct{}, len(incoming))
	for _, c := range incoming {
		replaced[c.Term] = struct{}{}
	}

	d.cards = slices.DeleteFunc(d.cards, func(c card.Card) bool {
		_, ok := replaced[c.Term]
		return ok
	})
	d.cards = append(d.cards, incoming...)
	return len(incoming)
}

// FindByDefinition returns the first card whose definition matches exactly.
func (d *Deck) FindByDefinition(definition string) (card.Card, bool) {
	for _, c := range d.cards {
		if c.Definition == definition {
			return c, true
		}
	}
	return card.Card{}, false
}

// Pick draws one card using pick, which must return a value in [0, n). The same card may be
// drawn on consecutive calls. It returns false on an empty deck.
func (d *Deck) Pick(pick func(n int) int) (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	return d.cards[pick(len(d.cards))], true
}

// RecordMistake increments the error counter of the card with the given term.
func (d *Deck) RecordMistake(term string) {
	if idx := d.indexOfTerm(term); idx >= 0 {
		d.cards[idx].Errors++
	}
}

// ResetStats sets every error counter to zero.
func (d *Deck) ResetStats() {
	for i := range d.cards {
		d.cards[i].Errors = 0
	}
}

// Hardest returns the cards tied at the highest positive error count, in deck order, along
// with that count. A deck whose cards all have zero errors has no hardest card.
func (d *Deck) Hardest() ([]card.Card, int) {
	maxErrors := 0
	for _, c := range d.cards {
		maxErrors = max(maxErrors, c.Errors)
	}
	if maxErrors == 0 {
		return nil, 0
	}

	var hardest []card.Card
	for _, c := range d.cards {
		if c.Errors == maxErrors {
			hardest = append(hardest, c)
		}
	}
	return hardest, maxErrors
}

func (d *Deck) indexOfTerm(term string) int {
	return slices.IndexFunc(d.cards, func(c card.Card) bool {
		return c.Term == term
	})
}
