package walk

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDirectory is returned when a path does not refer to a directory.
	ErrNotDirectory = errors.New("keyseek: not a directory")

	// ErrNotRegularFile is returned when a path does not refer to a regular file.
	// Symbolic links, sockets, pipes and devices all fail this check.
	ErrNotRegularFile = errors.New("keyseek: not a regular file")

	// ErrUndecodable is returned when file contents are not valid UTF-8 text.
	ErrUndecodable = errors.New("keyseek: contents are not valid text")

	// ErrNoSearchTarget is returned when neither names nor contents are selected.
	ErrNoSearchTarget = errors.New("keyseek: at least one of name or content matching must be enabled")
)

// Warning is a non-fatal problem with a single entry. The entry was skipped and
// the walk carried on.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) Error() string {
	return fmt.Sprintf("path %q: %v", w.Path, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}
