package strategy

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-guess/internal/game"
)

// Random picks a uniformly random legal guess and resolves immediately.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random source. A zero seed uses the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Decide resolves with a random element of the action space.
func (r *Random) Decide(_ context.Context, g game.PlayerView, resolve Resolve) {
	actions := g.Actions()
	resolve(actions[r.rng.Intn(len(actions))])
}

var _ Source = (*Random)(nil)
