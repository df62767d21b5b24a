// guess is a two-player number-guessing duel for the terminal.
//
// Usage:
//
//	guess play               - Play a match (human X vs random O by default)
//	guess list               - List available player kinds
//	guess history            - Show recent matches
//	guess stats              - Show aggregated results
//	guess serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Use a specific config file
//	--seed <value>      - Set RNG seed for reproducible matches
//	--db <path>         - Set database path (default: ~/.guess/matches.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-guess/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess - a number-guessing duel in your terminal",
	Long: `Guess is a two-player number-guessing game. A secret number is drawn
from 1..N; X guesses first, then O. Hitting the secret scores a point.

Available commands:
  play     - Play a match
  list     - Show available player kinds
  history  - View recent matches
  stats    - View aggregated results
  serve    - Start SSH server for remote play

Examples:
  guess play
  guess play --difficulty hard
  guess play --x random --o random --seed 42
  guess history --limit 5
  guess serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg
}

// newLogger builds the stderr logger used by all commands.
func newLogger(level, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(log.WarnLevel)
		logger.Warn("unknown log level, using warn", "level", level)
	}
	return logger
}
