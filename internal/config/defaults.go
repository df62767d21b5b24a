package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/strategy"
)

//go:embed defaults/guess.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration: a human X against a
// random O on a six-sided die.
func DefaultConfig() Config {
	return Config{
		Faces:      core.DefaultFaces,
		Difficulty: DifficultyCustom,
		Players: PlayersConfig{
			X: strategy.KindHuman,
			O: strategy.KindRandom,
		},
		Prompt:   strategy.DefaultLabel,
		DBPath:   "~/.guess/matches.db",
		LogLevel: "warn",
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 5 * time.Minute,
			MaxTimeout:  30 * time.Minute,
		},
	}
}
