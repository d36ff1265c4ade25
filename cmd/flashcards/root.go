package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/choplin/flashcards/internal/config"
	"github.com/choplin/flashcards/internal/logger"
	"github.com/choplin/flashcards/internal/session"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flashcards [-import FILE] [-export FILE]",
		Short: "flashcards - an interactive term/definition trainer",
		Long: "flashcards keeps a deck of term/definition cards in memory and quizzes you on them.\n" +
			"-import FILE loads cards before the first prompt; -export FILE saves the deck on exit.",
		Args: cobra.ArbitraryArgs,
		// Arguments are positional (flag, path) pairs such as "-import deck.txt", which pflag
		// would read as shorthand clusters.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(cmd.ErrOrStderr(), logrus.WarnLevel)

			startup, err := config.ParseArgs(args)
			if err != nil {
				log.WithError(err).Error("invalid arguments")
				return err
			}

			s := session.New(session.Options{
				In:     cmd.InOrStdin(),
				Out:    cmd.OutOrStdout(),
				Logger: log,
			})

			// The session logs its own failures with its id.
			ctx := cmd.Context()
			if err := s.ApplyStartup(ctx, startup); err != nil {
				return err
			}
			return s.Run(ctx)
		},
	}

	return cmd
}
