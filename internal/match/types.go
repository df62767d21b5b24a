// Package match runs the turn loop of a single duel.
package match

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
)

// ID uniquely identifies a match.
type ID string

// NewID returns a fresh random match ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Mode describes who sits at the two seats.
type Mode int

const (
	// ModeVsCPU is a human against a CPU source.
	ModeVsCPU Mode = iota

	// ModeHotseat is two humans sharing one console.
	ModeHotseat

	// ModeCPUOnly is two CPU sources; useful for demos and smoke tests.
	ModeCPUOnly
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeVsCPU:
		return "vs CPU"
	case ModeHotseat:
		return "Hotseat"
	case ModeCPUOnly:
		return "CPU vs CPU"
	default:
		return "Unknown"
	}
}

// ModeFor derives the mode from which seats are played by humans.
func ModeFor(humanX, humanO bool) Mode {
	switch {
	case humanX && humanO:
		return ModeHotseat
	case humanX || humanO:
		return ModeVsCPU
	default:
		return ModeCPUOnly
	}
}

// Result is the outcome of a finished match.
type Result struct {
	ID       ID
	Mode     Mode
	SourceX  string
	SourceO  string
	Final    game.Snapshot
	Winner   core.PlayerID // Empty on a tie
	Duration time.Duration
	EndedAt  time.Time
}

// ResultSaver persists finished matches.
type ResultSaver interface {
	SaveMatchResult(Result) error
}
