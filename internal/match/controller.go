package match

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
	"github.com/vovakirdan/tui-guess/internal/player"
	"github.com/vovakirdan/tui-guess/internal/view"
)

// Controller drives a match: it asks the active player for a guess, applies
// it, renders, and finalizes once the game is terminal. It owns the game.
type Controller struct {
	id      ID
	game    *game.Game
	players map[core.PlayerID]*player.Player
	view    view.View
	logger  *log.Logger
	saver   ResultSaver
	mode    Mode
	labels  [2]string
	now     func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithResultSaver persists the result after the game ends.
func WithResultSaver(s ResultSaver) Option {
	return func(c *Controller) {
		c.saver = s
	}
}

// WithID overrides the generated match ID.
func WithID(id ID) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// WithMode records how the seats are played.
func WithMode(m Mode) Option {
	return func(c *Controller) {
		c.mode = m
	}
}

// WithSourceNames records the source kinds for X and O in the result.
func WithSourceNames(x, o string) Option {
	return func(c *Controller) {
		c.labels = [2]string{x, o}
	}
}

// New creates a controller. x and o must sit at seats X and O.
func New(g *game.Game, x, o *player.Player, v view.View, opts ...Option) (*Controller, error) {
	if g == nil || x == nil || o == nil || v == nil {
		return nil, fmt.Errorf("match: game, players and view are required")
	}
	if x.ID() != core.PlayerX || o.ID() != core.PlayerO {
		return nil, fmt.Errorf("match: players must sit at X and O, got %s and %s", x.ID(), o.ID())
	}

	c := &Controller{
		id:   NewID(),
		game: g,
		players: map[core.PlayerID]*player.Player{
			core.PlayerX: x,
			core.PlayerO: o,
		},
		view:   v,
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ID returns the match identifier.
func (c *Controller) ID() ID {
	return c.id
}

// Game returns the controlled game as a read-only view.
func (c *Controller) Game() game.View {
	return c.game
}

// Run plays the match to the end. The only error is the cause of ctx being
// done; players are finalized in every case.
func (c *Controller) Run(ctx context.Context) (Result, error) {
	started := c.now()
	logger := c.logger.With("match", c.id)
	logger.Debug("match started", "faces", c.game.Faces(), "mode", c.mode)

	c.view.Render(c.game)

	for !c.game.IsTerminal() {
		active := c.game.Active()

		action, err := c.awaitTurn(ctx, c.players[active])
		if err != nil {
			logger.Info("match interrupted", "waiting_for", active, "error", err)
			c.finishPlayers(logger)
			return Result{}, err
		}

		c.game.Apply(action)
		if c.game.Active() == active {
			logger.Debug("guess dropped", "player", active, "action", action)
		}
		c.view.Render(c.game)
	}

	c.finishPlayers(logger)
	c.view.OnGameOver(c.game)

	result := Result{
		ID:       c.id,
		Mode:     c.mode,
		SourceX:  c.labels[0],
		SourceO:  c.labels[1],
		Final:    game.TakeSnapshot(c.game),
		Winner:   c.game.Winner(),
		Duration: c.now().Sub(started),
		EndedAt:  c.now(),
	}
	logger.Info("match over",
		"secret", result.Final.Secret,
		"outcome", result.Final.Outcome,
		"winner", result.Winner,
	)

	if c.saver != nil {
		if err := c.saver.SaveMatchResult(result); err != nil {
			logger.Warn("could not save match result", "error", err)
		}
	}

	return result, nil
}

// awaitTurn hands p a one-shot resolver and waits for it or for ctx.
func (c *Controller) awaitTurn(ctx context.Context, p *player.Player) (core.Action, error) {
	actions := make(chan core.Action, 1)
	var once sync.Once
	resolve := func(a core.Action) {
		once.Do(func() { actions <- a })
	}

	// A source may block until input arrives, so the wait below stays
	// responsive to cancellation.
	go p.TakeTurn(ctx, c.game.PlayerView(), resolve)

	select {
	case a := <-actions:
		return a, nil
	case <-ctx.Done():
		return core.InvalidAction, context.Cause(ctx)
	}
}

// finishPlayers calls OnGameOver on X then O.
func (c *Controller) finishPlayers(logger *log.Logger) {
	for _, id := range core.Players {
		if err := c.players[id].OnGameOver(); err != nil {
			logger.Warn("player cleanup failed", "player", id, "error", err)
		}
	}
}
