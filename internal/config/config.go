// Package config resolves startup arguments and default file locations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// ImportFlag loads a card file before the first prompt.
	ImportFlag = "-import"
	// ExportFlag names a file the deck is written to on exit.
	ExportFlag = "-export"

	appName     = "flashcards"
	logFileName = "session.log"

	// Arguments are read as (flag, path) pairs from the first maxSlots positions.
	maxSlots = 4
)

// ErrMissingPath indicates a startup flag without the path that should follow it.
var ErrMissingPath = errors.New("config: missing path argument")

// Startup holds what the positional arguments asked for.
type Startup struct {
	// ImportPaths are imported in argument order before the session starts.
	ImportPaths []string
	// ExportPath is empty unless -export was given.
	ExportPath string
}

// ParseArgs reads up to two (flag, path) pairs. Unknown flags consume their path and are
// otherwise ignored; a flag in the last position with no path after it is an error.
func ParseArgs(args []string) (Startup, error) {
	var startup Startup

	for i := 0; i < len(args) && i < maxSlots; i += 2 {
		flag := args[i]
		if i+1 >= len(args) {
			return Startup{}, fmt.Errorf("%w: %q at position %d", ErrMissingPath, flag, i)
		}
		path := args[i+1]

		switch flag {
		case ImportFlag:
			startup.ImportPaths = append(startup.ImportPaths, path)
		case ExportFlag:
			startup.ExportPath = path
		}
	}

	return startup, nil
}

// DefaultLogPath is where the session log goes when no file name is given. It lives under the
// XDG state directory, falling back to the user's home directory.
func DefaultLogPath() string {
	xdg.Reload()

	stateHome := xdg.StateHome
	if stateHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), appName, logFileName)
			}
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	return filepath.Join(stateHome, appName, logFileName)
}
