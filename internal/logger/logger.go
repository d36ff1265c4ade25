// Package logger configures diagnostic logging. Diagnostics go to their own writer (stderr in
// the CLI) and never into the user-facing transcript.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	return New(io.Discard, logrus.PanicLevel)
}
