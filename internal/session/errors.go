package session

import "errors"

var (
	// ErrUnknownCommand is returned when the user enters an action the loop does not know.
	ErrUnknownCommand = errors.New("session: unknown command")

	// ErrInputClosed is returned when input ends before the exit command.
	ErrInputClosed = errors.New("session: input closed before exit")

	// errExit stops the loop after the exit command has run.
	errExit = errors.New("session: exit")
)
