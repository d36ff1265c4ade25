// Package filesystem provides whole-file line storage for card decks and session logs.
package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates the requested file does not exist.
var ErrNotFound = errors.New("filesystem: file not found")

// ReadLines reads a text file and splits it on newlines. A final newline does not produce an
// extra line, and CRLF endings are accepted.
func ReadLines(path string) ([]string, error) {
	if !FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	//nolint:gosec // G304: path is supplied by the user on purpose
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := strings.ReplaceAll(string(bytes), "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

// WriteLines overwrites path with lines joined by newlines. No trailing newline is written.
func WriteLines(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether the given path exists. Any stat failure counts as missing.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
