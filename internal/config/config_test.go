package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-guess/internal/strategy"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := DefaultConfig()
	if cfg.Faces != want.Faces || cfg.Players != want.Players || cfg.Prompt != want.Prompt {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, want)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("expected idle timeout 5m, got %v", cfg.Server.IdleTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("faces: 20\nplayers:\n  x: random\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Faces != 20 {
		t.Errorf("Faces = %d, want 20", cfg.Faces)
	}
	if cfg.Players.X != strategy.KindRandom {
		t.Errorf("Players.X = %q, want random", cfg.Players.X)
	}
	// Unset keys keep defaults
	if cfg.Players.O != strategy.KindRandom {
		t.Errorf("Players.O = %q, want default random", cfg.Players.O)
	}
	if cfg.DBPath != DefaultConfig().DBPath {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("faces: [1, 2"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero faces", func(c *Config) { c.Faces = 0 }, true},
		{"negative faces", func(c *Config) { c.Faces = -3 }, true},
		{"preset overrides bad faces", func(c *Config) { c.Faces = 0; c.Difficulty = DifficultyHard }, false},
		{"unknown preset", func(c *Config) { c.Difficulty = "nightmare" }, true},
		{"unknown player", func(c *Config) { c.Players.O = "oracle" }, true},
		{"empty player", func(c *Config) { c.Players.X = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("error %v does not wrap ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	prev := 0
	for _, p := range Presets {
		faces, ok := FacesForPreset(p)
		if !ok {
			t.Fatalf("preset %q has no face count", p)
		}
		if faces <= prev {
			t.Errorf("preset %q (%d faces) is not harder than the previous one", p, faces)
		}
		prev = faces
	}

	if _, ok := FacesForPreset(DifficultyCustom); ok {
		t.Error("custom preset should not define a face count")
	}

	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Faces != 3 || cfg.EffectiveFaces() != 3 {
		t.Errorf("easy preset: faces=%d effective=%d", cfg.Faces, cfg.EffectiveFaces())
	}

	cfg.Faces = 42
	ApplyPreset(&cfg, DifficultyCustom)
	if cfg.EffectiveFaces() != 42 {
		t.Errorf("custom preset should keep faces, got %d", cfg.EffectiveFaces())
	}
}
