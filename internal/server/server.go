// Package server hosts guessing duels over SSH via Wish. Every session plays
// one match as X against a CPU opponent.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
	"github.com/vovakirdan/tui-guess/internal/match"
	"github.com/vovakirdan/tui-guess/internal/player"
	"github.com/vovakirdan/tui-guess/internal/prompt"
	"github.com/vovakirdan/tui-guess/internal/storage"
	"github.com/vovakirdan/tui-guess/internal/strategy"
	"github.com/vovakirdan/tui-guess/internal/view"
)

// Config holds configuration for the SSH server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.guess/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MaxTimeout caps the length of a session.
	MaxTimeout time.Duration

	// Faces is the action space size for every match.
	Faces int

	// Opponent is the decision source playing O.
	Opponent strategy.Kind

	// Prompt is the label shown to the remote player.
	Prompt string
}

// Server wraps a Wish SSH server.
type Server struct {
	config Config
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// New creates a server. store may be nil, in which case results are not kept.
func New(cfg Config, store *storage.Store, logger *log.Logger) (*Server, error) {
	if cfg.Faces <= 0 {
		return nil, fmt.Errorf("%w: faces must be positive, got %d", game.ErrInvalidConfiguration, cfg.Faces)
	}
	if cfg.Opponent == "" {
		cfg.Opponent = strategy.KindRandom
	}
	if !strategy.Exists(cfg.Opponent) {
		return nil, fmt.Errorf("unknown opponent %q", cfg.Opponent)
	}
	if info, _ := strategy.Lookup(cfg.Opponent); info.Interactive {
		return nil, fmt.Errorf("opponent %q needs a local prompt and cannot be served", cfg.Opponent)
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "guess-ssh",
		})
	}

	srv := &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".guess", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			srv.matchMiddleware,
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.MaxTimeout > 0 {
		opts = append(opts, wish.WithMaxTimeout(cfg.MaxTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// matchMiddleware plays one match on the session.
func (s *Server) matchMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if err := s.playSession(sess); err != nil {
			s.logger.Warn("match ended early", "user", sess.User(), "error", err)
			wish.Errorln(sess, "match ended early:", err)
		}
		next(sess)
	}
}

// playSession wires a human X (the remote user) against the configured CPU O.
func (s *Server) playSession(sess ssh.Session) error {
	ctx, cancel := context.WithCancelCause(sess.Context())
	defer cancel(nil)

	// The emulated PTY already turns "\n" into "\r\n" on write.
	var prompter prompt.Prompter
	if _, _, isPty := sess.Pty(); isPty {
		prompter = prompt.NewTea(sess, sess)
	} else {
		line, err := prompt.NewLine(sess, sess)
		if err != nil {
			return err
		}
		prompter = line
	}

	logger := s.logger.With("user", sess.User())

	human, err := strategy.Create(strategy.KindHuman, strategy.Deps{
		Prompter:  prompter,
		Label:     s.config.Prompt,
		Logger:    logger,
		OnFailure: cancel,
	})
	if err != nil {
		prompter.Close()
		return err
	}
	cpu, err := strategy.Create(s.config.Opponent, strategy.Deps{Seed: time.Now().UnixNano()})
	if err != nil {
		prompter.Close()
		return err
	}

	g, err := game.New(core.RuntimeConfig{Faces: s.config.Faces})
	if err != nil {
		prompter.Close()
		return err
	}

	opts := []match.Option{
		match.WithLogger(logger),
		match.WithMode(match.ModeVsCPU),
		match.WithSourceNames(string(strategy.KindHuman), string(s.config.Opponent)),
	}
	if s.store != nil {
		opts = append(opts, match.WithResultSaver(s.store))
	}

	ctrl, err := match.New(g,
		player.New(core.PlayerX, human),
		player.New(core.PlayerO, cpu),
		view.NewConsole(sess, bubbletea.MakeRenderer(sess)),
		opts...,
	)
	if err != nil {
		prompter.Close()
		return err
	}

	fmt.Fprintf(sess, "Hi %s! You are X, the computer is O. Guess the secret number from 1-%d.\n\n", sess.User(), s.config.Faces)

	if _, err := ctrl.Run(ctx); err != nil {
		return err
	}
	return nil
}

// loggingMiddleware logs SSH session events.
func (s *Server) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT/SIGTERM.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return err
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
