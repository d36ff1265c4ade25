package deck

import "errors"

var (
	// ErrDuplicateTerm indicates a card with the same term is already in the deck.
	ErrDuplicateTerm = errors.New("deck: duplicate term")

	// ErrDuplicateDefinition indicates a card with the same definition is already in the deck.
	ErrDuplicateDefinition = errors.New("deck: duplicate definition")
)
