// Package prompt provides the interactive input collaborators used by human
// players: a line-oriented prompter for plain streams and SSH sessions, and a
// Bubble Tea prompter for real terminals.
package prompt

import (
	"context"
	"errors"
)

var (
	// ErrClosed is returned by Prompt after Close has been called.
	ErrClosed = errors.New("prompt: closed")

	// ErrAborted is returned when the user cancels the prompt (Ctrl+C).
	ErrAborted = errors.New("prompt: aborted by user")
)

// Prompter asks for one line of input per call.
type Prompter interface {
	// Prompt shows label and blocks until a line is entered, the prompter is
	// closed, or ctx is done.
	Prompt(ctx context.Context, label string) (string, error)

	// Close releases the input. Safe to call more than once.
	Close() error
}
