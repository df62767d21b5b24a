package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-guess/internal/core"
)

func newGame(t *testing.T, faces, target int) *Game {
	t.Helper()
	g, err := New(core.RuntimeConfig{Faces: faces}, WithTarget(target))
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	t.Run("fresh game has a secret in range and X to move", func(t *testing.T) {
		for faces := 1; faces <= 20; faces++ {
			// Given: a game with a random secret
			g, err := New(core.RuntimeConfig{Faces: faces, Seed: int64(faces)})
			require.NoError(t, err)

			// Then: it matches the initial state
			assert.GreaterOrEqual(t, int(g.Secret()), 1)
			assert.LessOrEqual(t, int(g.Secret()), faces)
			assert.False(t, g.IsTerminal())
			assert.Equal(t, core.PlayerX, g.Active())
			assert.Equal(t, 0, g.Outcome())
			assert.Len(t, g.Actions(), faces)
		}
	})

	t.Run("rejects non-positive face counts", func(t *testing.T) {
		for _, faces := range []int{0, -1, -6} {
			_, err := New(core.RuntimeConfig{Faces: faces})
			require.ErrorIs(t, err, ErrInvalidConfiguration)
		}
	})

	t.Run("rejects a target outside the action space", func(t *testing.T) {
		_, err := New(core.RuntimeConfig{Faces: 6}, WithTarget(7))
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("same seed draws the same secret", func(t *testing.T) {
		g1, err := New(core.RuntimeConfig{Faces: 100, Seed: 42})
		require.NoError(t, err)
		g2, err := New(core.RuntimeConfig{Faces: 100, Seed: 42})
		require.NoError(t, err)

		assert.Equal(t, g1.Secret(), g2.Secret())
	})

	t.Run("WithRand overrides the seed", func(t *testing.T) {
		want := rand.New(rand.NewSource(7)).Intn(10) + 1

		g, err := New(core.RuntimeConfig{Faces: 10, Seed: 1}, WithRand(rand.New(rand.NewSource(7))))
		require.NoError(t, err)

		assert.Equal(t, core.Action(want), g.Secret())
	})

	t.Run("actions are a copy", func(t *testing.T) {
		g := newGame(t, 3, 1)
		actions := g.Actions()
		actions[0] = 99

		assert.Equal(t, []core.Action{1, 2, 3}, g.Actions())
	})
}

func TestApply_InvalidActionIsNoOp(t *testing.T) {
	for _, action := range []core.Action{0, -1, 7, 99, core.InvalidAction} {
		// Given: a fresh game
		g := newGame(t, 6, 4)

		// When: X submits a guess outside 1..6
		g.Apply(action)

		// Then: nothing changes
		assert.Equal(t, core.PlayerX, g.Active())
		_, ok := g.Choice(core.PlayerX)
		assert.False(t, ok)
		_, _, moved := g.LastMove()
		assert.False(t, moved)
		assert.Equal(t, 0, g.Outcome())
		assert.False(t, g.IsTerminal())
	}
}

func TestApply_Alternation(t *testing.T) {
	// Given: a fresh game
	g := newGame(t, 6, 1)

	// When: X guesses
	g.Apply(2)

	// Then: O is active and X's guess is recorded
	assert.Equal(t, core.PlayerO, g.Active())
	x, ok := g.Choice(core.PlayerX)
	require.True(t, ok)
	assert.Equal(t, core.Action(2), x)

	who, what, ok := g.LastMove()
	require.True(t, ok)
	assert.Equal(t, core.PlayerX, who)
	assert.Equal(t, core.Action(2), what)
	assert.False(t, g.IsTerminal())

	// When: O guesses
	g.Apply(3)

	// Then: control returns to X and the game is over
	assert.Equal(t, core.PlayerX, g.Active())
	assert.True(t, g.IsTerminal())
	who, what, _ = g.LastMove()
	assert.Equal(t, core.PlayerO, who)
	assert.Equal(t, core.Action(3), what)
}

func TestApply_TerminalIsAbsorbing(t *testing.T) {
	// Given: a finished game
	g := newGame(t, 6, 4)
	g.Apply(4)
	g.Apply(2)
	require.True(t, g.IsTerminal())
	before := TakeSnapshot(g)

	// When: more guesses arrive
	g.Apply(1)
	g.Apply(4)

	// Then: nothing changes
	assert.Equal(t, before, TakeSnapshot(g))
}

func TestApply_OutcomeLaw(t *testing.T) {
	tests := []struct {
		name    string
		target  int
		x, o    core.Action
		outcome int
		winner  core.PlayerID
	}{
		{"X matches", 4, 4, 2, 1, core.PlayerX},
		{"O matches", 3, 5, 3, -1, core.PlayerO},
		{"nobody matches", 1, 2, 3, 0, ""},
		{"both match and cancel", 5, 5, 5, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, 6, tt.target)

			g.Apply(tt.x)
			assert.Equal(t, 0, g.Outcome(), "outcome must not move before terminal")
			g.Apply(tt.o)

			assert.True(t, g.IsTerminal())
			assert.Equal(t, tt.outcome, g.Outcome())
			assert.Equal(t, tt.winner, g.Winner())
		})
	}
}

func TestApply_InvalidThenValid(t *testing.T) {
	// Given: a fresh game
	g := newGame(t, 6, 4)

	// When: X submits 99, then a legal guess
	g.Apply(99)
	require.Equal(t, core.PlayerX, g.Active())
	g.Apply(4)

	// Then: the legal guess is recorded for X
	x, ok := g.Choice(core.PlayerX)
	require.True(t, ok)
	assert.Equal(t, core.Action(4), x)
	assert.Equal(t, core.PlayerO, g.Active())
}

func TestTakeSnapshot(t *testing.T) {
	g := newGame(t, 6, 3)
	g.Apply(1)

	snap := TakeSnapshot(g)

	assert.Equal(t, Snapshot{
		Faces:   6,
		Secret:  3,
		Active:  core.PlayerO,
		ChoiceX: 1,
		ChoiceO: core.InvalidAction,
	}, snap)
}

func TestPlayerView_HidesSecret(t *testing.T) {
	// Given: a game with one accepted guess
	g := newGame(t, 6, 4)
	g.Apply(2)

	// When: a decision source receives the player view
	pv := g.PlayerView()

	// Then: it mirrors the game but cannot reach the secret
	_, isFull := pv.(View)
	assert.False(t, isFull)
	_, isGame := pv.(*Game)
	assert.False(t, isGame)

	assert.Equal(t, g.Active(), pv.Active())
	assert.Equal(t, g.Actions(), pv.Actions())
	assert.Equal(t, 6, pv.Faces())
	x, ok := pv.Choice(core.PlayerX)
	require.True(t, ok)
	assert.Equal(t, core.Action(2), x)
	mover, last, ok := pv.LastMove()
	require.True(t, ok)
	assert.Equal(t, core.PlayerX, mover)
	assert.Equal(t, core.Action(2), last)
	assert.False(t, pv.IsTerminal())
	assert.Equal(t, 0, pv.Outcome())

	// The view tracks later moves.
	g.Apply(4)
	assert.True(t, pv.IsTerminal())
	assert.Equal(t, -1, pv.Outcome())
}
