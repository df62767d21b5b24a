// Package player binds a seat to the decision source that plays it.
package player

import (
	"context"
	"io"
	"sync"

	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
	"github.com/vovakirdan/tui-guess/internal/strategy"
)

// Player is a seat plus its decision source. It keeps no game state.
type Player struct {
	id     core.PlayerID
	source strategy.Source

	overOnce sync.Once
	overErr  error
}

// New creates a player for seat id.
func New(id core.PlayerID, source strategy.Source) *Player {
	return &Player{id: id, source: source}
}

// ID returns the player's seat.
func (p *Player) ID() core.PlayerID {
	return p.id
}

// TakeTurn asks the source for a guess and forwards it to resolve.
func (p *Player) TakeTurn(ctx context.Context, g game.PlayerView, resolve strategy.Resolve) {
	p.source.Decide(ctx, g, resolve)
}

// OnGameOver releases the source's resources if it holds any.
// Only the first call has an effect.
func (p *Player) OnGameOver() error {
	p.overOnce.Do(func() {
		if c, ok := p.source.(io.Closer); ok {
			p.overErr = c.Close()
		}
	})
	return p.overErr
}
