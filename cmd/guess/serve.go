package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-guess/internal/server"
	"github.com/vovakirdan/tui-guess/internal/storage"
	"github.com/vovakirdan/tui-guess/internal/strategy"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagOpponent    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the guess SSH server",
	Long: `Start an SSH server that lets users connect and play a match.

Each SSH connection plays X against a computer O.
Results are stored per-server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.guess/host_key

Examples:
  guess serve                           # Listen on :23235 with auto-generated key
  guess serve --ssh :2222               # Listen on port 2222
  guess serve --host-key ./my_host_key  # Use specific host key
  guess serve --db ./matches.db         # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
	serveCmd.Flags().StringVar(&flagOpponent, "opponent", string(strategy.KindRandom), "Player kind for the computer O")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srvCfg := server.Config{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		IdleTimeout: cfg.Server.IdleTimeout,
		MaxTimeout:  cfg.Server.MaxTimeout,
		Faces:       cfg.EffectiveFaces(),
		Opponent:    strategy.Kind(flagOpponent),
		Prompt:      cfg.Prompt,
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger := newLogger(cfg.LogLevel, "guess-ssh")
	// The server is chatty about sessions; keep them visible by default.
	if flagLogLevel == "" {
		logger.SetLevel(log.InfoLevel)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	srv, err := server.New(srvCfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting guess SSH server on %s\n", srv.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
