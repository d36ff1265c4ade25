package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/choplin/flashcards/internal/card"
	"github.com/choplin/flashcards/internal/config"
	"github.com/choplin/flashcards/internal/filesystem"
)

func (s *Session) add(_ context.Context) error {
	term, err := s.prompt("The card:")
	if err != nil {
		return err
	}
	if s.deck.HasTerm(term) {
		return s.transcript.Printf("The card \"%s\" already exists.", term)
	}

	definition, err := s.prompt("The definition of the card:")
	if err != nil {
		return err
	}
	if s.deck.HasDefinition(definition) {
		return s.transcript.Printf("The definition \"%s\" already exists.", definition)
	}

	if err := s.deck.Add(term, definition); err != nil {
		return err
	}
	return s.transcript.Printf("The pair (\"%s\":\"%s\") has been added.", term, definition)
}

func (s *Session) remove(_ context.Context) error {
	term, err := s.prompt("Which card?")
	if err != nil {
		return err
	}
	if s.deck.Remove(term) {
		return s.transcript.Print("The card has been removed.")
	}
	return s.transcript.Printf("Can't remove \"%s\": there is no such card.", term)
}

func (s *Session) importCmd(ctx context.Context) error {
	path, err := s.prompt("File name:")
	if err != nil {
		return err
	}
	return s.importFile(ctx, path)
}

// importFile validates the whole file before touching the deck, so a malformed line leaves the
// deck as it was.
func (s *Session) importFile(_ context.Context, path string) error {
	lines, err := filesystem.ReadLines(path)
	if errors.Is(err, filesystem.ErrNotFound) {
		s.log.WithField("path", path).Debug("import file not found")
		return s.transcript.Print("File not found.")
	}
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	cards, err := card.ParseLines(lines)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	loaded := s.deck.Merge(cards)
	s.log.WithField("path", path).WithField("cards", loaded).Debug("imported cards")
	return s.transcript.Printf("%d cards have been loaded.", loaded)
}

func (s *Session) exportCmd(ctx context.Context) error {
	path, err := s.prompt("File name:")
	if err != nil {
		return err
	}
	return s.exportFile(ctx, path)
}

func (s *Session) exportFile(_ context.Context, path string) error {
	cards := s.deck.Cards()
	if err := filesystem.WriteLines(path, card.FormatLines(cards)); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	s.log.WithField("path", path).WithField("cards", len(cards)).Debug("exported cards")
	return s.transcript.Printf("%d cards have been saved.", len(cards))
}

func (s *Session) ask(_ context.Context) error {
	answer, err := s.prompt("How many times to ask?")
	if err != nil {
		return err
	}
	times, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return s.transcript.Printf("\"%s\" is not a number.", answer)
	}

	times = min(times, s.deck.Len())
	for range times {
		c, ok := s.deck.Pick(s.pick)
		if !ok {
			break
		}

		given, err := s.prompt(fmt.Sprintf("Print the definition of \"%s\":", c.Term))
		if err != nil {
			return err
		}

		if given == c.Definition {
			if err := s.transcript.Print("Correct!"); err != nil {
				return err
			}
			continue
		}

		s.deck.RecordMistake(c.Term)
		if other, found := s.deck.FindByDefinition(given); found {
			err = s.transcript.Printf("Wrong. The right answer is \"%s\", but your definition is correct for \"%s\".", c.Definition, other.Term)
		} else {
			err = s.transcript.Printf("Wrong. The right answer is \"%s\".", c.Definition)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) exit(ctx context.Context) error {
	if err := s.transcript.Print("Bye bye!"); err != nil {
		return err
	}
	if s.exportPath != "" {
		if err := s.exportFile(ctx, s.exportPath); err != nil {
			return err
		}
	}
	return errExit
}

// saveLog writes the transcript. An empty file name selects the default log location.
func (s *Session) saveLog(_ context.Context) error {
	path, err := s.prompt("File name:")
	if err != nil {
		return err
	}
	if path == "" {
		path = config.DefaultLogPath()
		if err := filesystem.EnsureParentDir(path); err != nil {
			return err
		}
	}

	if err := s.transcript.Save(path); err != nil {
		return fmt.Errorf("failed to save log: %w", err)
	}
	s.log.WithField("path", path).Debug("saved log")
	return s.transcript.Print("The log has been saved.")
}

func (s *Session) hardestCard(_ context.Context) error {
	hardest, maxErrors := s.deck.Hardest()
	switch len(hardest) {
	case 0:
		return s.transcript.Print("There are no cards with errors.")
	case 1:
		return s.transcript.Printf("The hardest card is \"%s\". You have %d errors answering it.", hardest[0].Term, maxErrors)
	default:
		quoted := make([]string, 0, len(hardest))
		for _, c := range hardest {
			quoted = append(quoted, "\""+c.Term+"\"")
		}
		return s.transcript.Printf("The hardest cards are %s. You have %d errors answering them.", strings.Join(quoted, ", "), maxErrors)
	}
}

func (s *Session) resetStats(_ context.Context) error {
	s.deck.ResetStats()
	return s.transcript.Print("Card statistics have been reset.")
}
