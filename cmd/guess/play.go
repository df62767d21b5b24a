package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-guess/internal/config"
	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
	"github.com/vovakirdan/tui-guess/internal/match"
	"github.com/vovakirdan/tui-guess/internal/player"
	"github.com/vovakirdan/tui-guess/internal/prompt"
	"github.com/vovakirdan/tui-guess/internal/storage"
	"github.com/vovakirdan/tui-guess/internal/strategy"
	"github.com/vovakirdan/tui-guess/internal/view"
)

var (
	flagFaces      int
	flagDifficulty string
	flagPlayerX    string
	flagPlayerO    string
	flagPrompt     string
	flagPlain      bool
)

var errInterrupted = errors.New("interrupted")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match in the terminal. By default you play X against a
random computer player O.

Player kinds (see 'guess list'):
  human   - type guesses at a prompt
  random  - computer guessing uniformly at random

Examples:
  guess play
  guess play --faces 20
  guess play --difficulty easy
  guess play --x human --o human       # Hotseat
  guess play --x random --o random     # Watch two CPUs
  guess play --plain                   # Line prompt even on a terminal`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFaces, "faces", 0, "Highest number to guess (overrides difficulty)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagPlayerX, "x", "", "Player kind for X")
	playCmd.Flags().StringVar(&flagPlayerO, "o", "", "Player kind for O")
	playCmd.Flags().StringVar(&flagPrompt, "prompt", "", "Prompt label for human players (%d = faces)")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use a plain line prompt instead of the interactive one")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	applyPlayFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'guess list' to see available player kinds.")
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel, "guess")
	faces := cfg.EffectiveFaces()

	g, err := game.New(core.RuntimeConfig{Faces: faces, Seed: flagSeed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancelCause(sigCtx)
	defer cancel(errInterrupted)

	// One prompter is shared by both seats in hotseat mode.
	var prompter prompt.Prompter
	humanX := isInteractive(cfg.Players.X)
	humanO := isInteractive(cfg.Players.O)
	if humanX || humanO {
		prompter, err = newPrompter()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening prompt: %v\n", err)
			os.Exit(1)
		}
	}

	seats := [2]*player.Player{}
	for i, kind := range [2]strategy.Kind{cfg.Players.X, cfg.Players.O} {
		src, err := strategy.Create(kind, strategy.Deps{
			Seed:      sourceSeed(i),
			Prompter:  prompter,
			Label:     cfg.Prompt,
			Logger:    logger,
			OnFailure: cancel,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating player %s: %v\n", core.Players[i], err)
			os.Exit(1)
		}
		seats[i] = player.New(core.Players[i], src)
	}

	opts := []match.Option{
		match.WithLogger(logger),
		match.WithMode(match.ModeFor(humanX, humanO)),
		match.WithSourceNames(string(cfg.Players.X), string(cfg.Players.O)),
	}

	// History is best-effort: a broken database never blocks a match.
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("match history disabled", "path", cfg.DBPath, "error", err)
	} else {
		defer store.Close()
		opts = append(opts, match.WithResultSaver(store))
	}

	ctrl, err := match.New(g, seats[0], seats[1], view.NewConsole(os.Stdout, nil), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating match: %v\n", err)
		os.Exit(1)
	}

	result, err := ctrl.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintf(os.Stderr, "Match abandoned: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if store != nil {
		fmt.Fprintf(os.Stderr, "Run 'guess history --id %s' to review this match.\n", result.ID)
	}
}

// applyPlayFlags lets explicit flags override the loaded configuration.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("difficulty") {
		config.ApplyPreset(cfg, config.DifficultyPreset(flagDifficulty))
	}
	if flags.Changed("faces") {
		cfg.Faces = flagFaces
		cfg.Difficulty = config.DifficultyCustom
	}
	if flags.Changed("x") {
		cfg.Players.X = strategy.Kind(flagPlayerX)
	}
	if flags.Changed("o") {
		cfg.Players.O = strategy.Kind(flagPlayerO)
	}
	if flags.Changed("prompt") {
		cfg.Prompt = flagPrompt
	}
}

func isInteractive(kind strategy.Kind) bool {
	info, ok := strategy.Lookup(kind)
	return ok && info.Interactive
}

// newPrompter picks the bubbletea prompt on a terminal and a line prompt otherwise.
func newPrompter() (prompt.Prompter, error) {
	if !flagPlain && term.IsTerminal(int(os.Stdin.Fd())) {
		return prompt.NewTea(os.Stdin, os.Stdout), nil
	}
	return prompt.NewLine(os.Stdin, os.Stdout)
}

// sourceSeed derives a per-seat seed so a fixed --seed replays the whole match.
func sourceSeed(seat int) int64 {
	if flagSeed == 0 {
		return 0
	}
	return flagSeed + int64(seat) + 1
}
