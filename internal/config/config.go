// Package config provides YAML-based configuration loading and difficulty
// presets for the guessing duel.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-guess/internal/strategy"
)

// ErrInvalidConfiguration is returned by Validate.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config contains all settings for a match and the surrounding tools.
type Config struct {
	Faces      int              `yaml:"faces"`
	Difficulty DifficultyPreset `yaml:"difficulty"` // Overrides faces unless "custom" or empty
	Players    PlayersConfig    `yaml:"players"`
	Prompt     string           `yaml:"prompt"` // %d is replaced by the face count
	DBPath     string           `yaml:"db_path"`
	LogLevel   string           `yaml:"log_level"`
	Server     ServerConfig     `yaml:"server"`
}

// PlayersConfig names the decision source for each seat.
type PlayersConfig struct {
	X strategy.Kind `yaml:"x"`
	O strategy.Kind `yaml:"o"`
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Auto-generated if empty
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxTimeout  time.Duration `yaml:"max_timeout"`
}

// EffectiveFaces returns the face count after applying the difficulty preset.
func (c Config) EffectiveFaces() int {
	if faces, ok := FacesForPreset(c.Difficulty); ok {
		return faces
	}
	return c.Faces
}

// Validate checks the configuration for values a match cannot start with.
func (c Config) Validate() error {
	if c.Difficulty != "" && c.Difficulty != DifficultyCustom {
		if _, ok := FacesForPreset(c.Difficulty); !ok {
			return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, c.Difficulty)
		}
	}
	if faces := c.EffectiveFaces(); faces <= 0 {
		return fmt.Errorf("%w: faces must be positive, got %d", ErrInvalidConfiguration, faces)
	}
	for seat, kind := range map[string]strategy.Kind{"x": c.Players.X, "o": c.Players.O} {
		if !strategy.Exists(kind) {
			return fmt.Errorf("%w: unknown player kind %q for %s", ErrInvalidConfiguration, kind, seat)
		}
	}
	return nil
}
