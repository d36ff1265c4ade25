// Package session runs the interactive flashcard loop. A Session owns the deck, the
// transcript and the pending export path, so independent sessions can coexist in one process.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/choplin/flashcards/internal/config"
	"github.com/choplin/flashcards/internal/deck"
	"github.com/choplin/flashcards/internal/logger"
	"github.com/choplin/flashcards/internal/transcript"
)

const actionPrompt = "Input the action (add, remove, import, export, ask, exit, log, hardest card, reset stats):"

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Logger *logrus.Logger
	// Pick returns a uniformly random index in [0, n). Defaults to math/rand/v2.
	Pick func(n int) int
	// Width is the terminal width used by view. Zero means detect it, falling back to 80.
	Width int
}

// Session is one run of the command loop.
type Session struct {
	deck       *deck.Deck
	transcript *transcript.Transcript
	in         *bufio.Reader
	out        io.Writer
	log        *logrus.Entry
	pick       func(n int) int
	width      int
	exportPath string
	commands   map[string]func(context.Context) error
}

// New creates a session with an empty deck.
func New(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	pick := opts.Pick
	if pick == nil {
		pick = rand.IntN
	}

	s := &Session{
		deck:       deck.New(),
		transcript: transcript.New(opts.Out),
		in:         bufio.NewReader(opts.In),
		out:        opts.Out,
		log:        log.WithField("session_id", uuid.NewString()),
		pick:       pick,
		width:      opts.Width,
	}

	s.commands = map[string]func(context.Context) error{
		"add":          s.add,
		"remove":       s.remove,
		"import":       s.importCmd,
		"export":       s.exportCmd,
		"ask":          s.ask,
		"view":         s.view,
		"exit":         s.exit,
		"log":          s.saveLog,
		"hardest card": s.hardestCard,
		"reset stats":  s.resetStats,
	}

	return s
}

// Deck exposes the session's cards.
func (s *Session) Deck() *deck.Deck {
	return s.deck
}

// Transcript exposes the session log.
func (s *Session) Transcript() *transcript.Transcript {
	return s.transcript
}

// ApplyStartup performs the imports requested on the command line and remembers the export
// path for exit. Failures are logged with the session id before being returned.
func (s *Session) ApplyStartup(ctx context.Context, startup config.Startup) error {
	for _, path := range startup.ImportPaths {
		if err := s.importFile(ctx, path); err != nil {
			s.log.WithError(err).WithField("path", path).Error("startup import failed")
			return err
		}
	}
	if startup.ExportPath != "" {
		s.exportPath = startup.ExportPath
		s.log.WithField("path", startup.ExportPath).Debug("export on exit enabled")
	}
	return nil
}

// Run prompts for actions until exit. It returns nil after the exit command and an error for
// an unknown command, closed input or a failed file operation. Errors are logged with the
// session id before being returned.
func (s *Session) Run(ctx context.Context) error {
	if err := s.loop(ctx); err != nil {
		s.log.WithError(err).Error("session aborted")
		return err
	}
	return nil
}

func (s *Session) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.transcript.Print(actionPrompt); err != nil {
			return err
		}
		action, err := s.readLine()
		if err != nil {
			return err
		}

		handler, ok := s.commands[action]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, action)
		}

		s.log.WithField("action", action).Debug("dispatching")
		if err := handler(ctx); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

// readLine reads one line of input and records it in the transcript. A last line without a
// trailing newline still counts.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	s.transcript.Record(line)
	return line, nil
}

// prompt prints a question and returns the user's answer.
func (s *Session) prompt(question string) (string, error) {
	if err := s.transcript.Print(question); err != nil {
		return "", err
	}
	return s.readLine()
}
