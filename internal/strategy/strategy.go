// Package strategy provides the decision sources that choose guesses on a
// player's behalf.
package strategy

import (
	"context"

	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
)

// Resolve delivers the chosen action. It is handed out for a single turn.
type Resolve func(core.Action)

// Source chooses an action for the active seat.
//
// Decide must call resolve exactly once, unless ctx is cancelled first, in
// which case it may return without resolving. It may block (human input) or
// resolve before returning (CPU).
type Source interface {
	Decide(ctx context.Context, g game.PlayerView, resolve Resolve)
}
