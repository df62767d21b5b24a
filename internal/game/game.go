// Package game implements the rules of the number-guessing duel.
//
// A Game holds all match state. It is mutated only through Apply and becomes
// read-only once both seats have submitted a guess.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-guess/internal/core"
)

// ErrInvalidConfiguration is returned when a game cannot be built from the
// given face count or options.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// PlayerView is what a decision source may see while a match is running.
// It never exposes the secret.
type PlayerView interface {
	// Active returns the seat whose guess is awaited.
	Active() core.PlayerID

	// Actions returns a copy of the action space 1..N.
	Actions() []core.Action

	// Faces returns N.
	Faces() int

	// Choice returns the guess submitted by id, if any.
	Choice(id core.PlayerID) (core.Action, bool)

	// LastMove returns the most recent accepted guess and who made it.
	LastMove() (core.PlayerID, core.Action, bool)

	// IsTerminal reports whether both seats have guessed.
	IsTerminal() bool

	// Outcome returns +1 for an X win, -1 for an O win, 0 otherwise.
	// It stays 0 until the game is terminal.
	Outcome() int
}

// View is the read-only face of a Game handed to the presentation layer.
type View interface {
	PlayerView

	// Secret returns the number to guess.
	Secret() core.Action
}

// Game is a single match of the guessing duel.
type Game struct {
	active    core.PlayerID
	actions   []core.Action
	secret    core.Action
	choices   map[core.PlayerID]core.Action
	lastMover core.PlayerID
	outcome   int
}

type options struct {
	target    core.Action
	hasTarget bool
	rng       *rand.Rand
}

// Option customizes game construction.
type Option func(*options)

// WithTarget fixes the secret instead of drawing it. Used for tests and replays.
func WithTarget(n int) Option {
	return func(o *options) {
		o.target = core.Action(n)
		o.hasTarget = true
	}
}

// WithRand draws the secret from rng instead of a generator seeded from the config.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// New builds a game with the action space 1..cfg.Faces and a secret drawn
// uniformly from it. X moves first.
func New(cfg core.RuntimeConfig, opts ...Option) (*Game, error) {
	if cfg.Faces <= 0 {
		return nil, fmt.Errorf("%w: face count must be positive, got %d", ErrInvalidConfiguration, cfg.Faces)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	actions := make([]core.Action, cfg.Faces)
	for i := range actions {
		actions[i] = core.Action(i + 1)
	}

	g := &Game{
		active:  core.PlayerX,
		actions: actions,
		choices: make(map[core.PlayerID]core.Action, 2),
	}

	switch {
	case o.hasTarget:
		if !slices.Contains(actions, o.target) {
			return nil, fmt.Errorf("%w: target %d outside 1..%d", ErrInvalidConfiguration, o.target, cfg.Faces)
		}
		g.secret = o.target
	default:
		rng := o.rng
		if rng == nil {
			seed := cfg.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng = rand.New(rand.NewSource(seed))
		}
		g.secret = actions[rng.Intn(len(actions))]
	}

	return g, nil
}

// IsTerminal reports whether both seats have submitted a guess.
func (g *Game) IsTerminal() bool {
	_, hasX := g.choices[core.PlayerX]
	_, hasO := g.choices[core.PlayerO]
	return hasX && hasO
}

// Apply records action as the active seat's guess and passes the turn.
// Guesses outside the action space and guesses after the game ended are
// dropped without error; the state is left untouched.
func (g *Game) Apply(action core.Action) {
	if g.IsTerminal() || !slices.Contains(g.actions, action) {
		return
	}

	g.choices[g.active] = action
	g.lastMover = g.active
	g.active = g.active.Other()

	if g.IsTerminal() {
		// Both checks run; a shared correct guess cancels out.
		if g.choices[core.PlayerX] == g.secret {
			g.outcome++
		}
		if g.choices[core.PlayerO] == g.secret {
			g.outcome--
		}
	}
}

// Active returns the seat whose guess is awaited.
func (g *Game) Active() core.PlayerID {
	return g.active
}

// Actions returns a copy of the action space.
func (g *Game) Actions() []core.Action {
	return slices.Clone(g.actions)
}

// Faces returns the size of the action space.
func (g *Game) Faces() int {
	return len(g.actions)
}

// Choice returns the guess submitted by id, if any.
func (g *Game) Choice(id core.PlayerID) (core.Action, bool) {
	a, ok := g.choices[id]
	return a, ok
}

// LastMove returns the most recent accepted guess.
func (g *Game) LastMove() (core.PlayerID, core.Action, bool) {
	if g.lastMover == "" {
		return "", core.InvalidAction, false
	}
	return g.lastMover, g.choices[g.lastMover], true
}

// Outcome returns the match score from X's point of view.
func (g *Game) Outcome() int {
	return g.outcome
}

// Secret returns the number to guess.
func (g *Game) Secret() core.Action {
	return g.secret
}

// Winner returns the winning seat, or "" for a tie or an unfinished game.
func (g *Game) Winner() core.PlayerID {
	return WinnerOf(g.outcome)
}

// WinnerOf maps an outcome to the winning seat.
func WinnerOf(outcome int) core.PlayerID {
	switch {
	case outcome > 0:
		return core.PlayerX
	case outcome < 0:
		return core.PlayerO
	default:
		return ""
	}
}

var _ View = (*Game)(nil)

// PlayerView returns a view of g without access to the secret.
func (g *Game) PlayerView() PlayerView {
	return playerView{g: g}
}

// playerView forwards the secret-free part of a Game.
type playerView struct {
	g *Game
}

func (v playerView) Active() core.PlayerID                        { return v.g.Active() }
func (v playerView) Actions() []core.Action                       { return v.g.Actions() }
func (v playerView) Faces() int                                   { return v.g.Faces() }
func (v playerView) Choice(id core.PlayerID) (core.Action, bool)  { return v.g.Choice(id) }
func (v playerView) LastMove() (core.PlayerID, core.Action, bool) { return v.g.LastMove() }
func (v playerView) IsTerminal() bool                             { return v.g.IsTerminal() }
func (v playerView) Outcome() int                                 { return v.g.Outcome() }
