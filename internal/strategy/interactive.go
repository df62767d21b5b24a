package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
	"github.com/vovakirdan/tui-guess/internal/prompt"
)

// DefaultLabel is the prompt shown when none is configured.
const DefaultLabel = "Guess a number from 1-%d"

// Interactive asks a human for each guess through a Prompter.
// The prompter is owned by the source and released by Close.
type Interactive struct {
	prompter  prompt.Prompter
	label     string
	logger    *log.Logger
	onFailure func(error)
}

// InteractiveOption configures an Interactive source.
type InteractiveOption func(*Interactive)

// WithLabel sets the prompt label. A %d verb is replaced by the face count.
func WithLabel(label string) InteractiveOption {
	return func(s *Interactive) {
		if label != "" {
			s.label = label
		}
	}
}

// WithLogger sets the logger used for prompt failures.
func WithLogger(logger *log.Logger) InteractiveOption {
	return func(s *Interactive) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFailureHandler registers fn to be called when the prompter can no longer
// deliver input (end of input, user abort). Typically the cancel function of
// the match context, so the controller stops waiting.
func WithFailureHandler(fn func(error)) InteractiveOption {
	return func(s *Interactive) {
		s.onFailure = fn
	}
}

// NewInteractive wraps p.
func NewInteractive(p prompt.Prompter, opts ...InteractiveOption) *Interactive {
	s := &Interactive{
		prompter: p,
		label:    DefaultLabel,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Decide prompts once and resolves with the parsed value. Unparsable text
// resolves with core.InvalidAction, which the game ignores, so the controller
// asks again. If the prompter fails, nothing is resolved and the failure
// handler is notified instead.
func (s *Interactive) Decide(ctx context.Context, g game.PlayerView, resolve Resolve) {
	line, err := s.prompter.Prompt(ctx, s.formatLabel(g))
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("prompt failed", "error", err)
		if s.onFailure != nil {
			s.onFailure(err)
		}
		return
	}
	resolve(core.ParseAction(line))
}

func (s *Interactive) formatLabel(g game.PlayerView) string {
	label := s.label
	if strings.Contains(label, "%d") {
		label = fmt.Sprintf(label, g.Faces())
	}
	return label + ": "
}

// Close releases the prompter.
func (s *Interactive) Close() error {
	return s.prompter.Close()
}

var _ Source = (*Interactive)(nil)
