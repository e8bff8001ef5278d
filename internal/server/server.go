package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/services"
)

// shutdownTimeout bounds how long open SSH sessions may take to end
const shutdownTimeout = 30 * time.Second

// Options configures the SSH server
type Options struct {
	Addr               string
	AuthorizedKeysPath string
	ErrorClearDelay    time.Duration
	HostKeyPath        string
	Keys               config.KeyBindingsConfig
}

// Server serves the shell UI over SSH. Every SSH session gets its own UI
// model on top of the same editors, so all sessions see one workspace.
type Server struct {
	opts       Options
	shell      *services.Shell
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(shell *services.Shell, opts Options) (*Server, error) {
	if opts.HostKeyPath == "" {
		opts.HostKeyPath = config.GetHostKeyPath()
	}
	if opts.AuthorizedKeysPath == "" {
		opts.AuthorizedKeysPath = config.GetAuthorizedKeysPath()
	}

	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		opts:  opts,
		shell: shell,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(opts.Addr),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			fingerprint := getKeyFingerprint(key)
			authorized := isKeyAuthorized(key, opts.AuthorizedKeysPath)

			if authorized {
				logging.Logger.Info("SSH key authenticated",
					"user", ctx.User(),
					"fingerprint", fingerprint,
					"key_type", key.Type())
			} else {
				logging.Logger.Warn("Unauthorized SSH key",
					"user", ctx.User(),
					"fingerprint", fingerprint,
					"key_type", key.Type())
			}
			return authorized
		}),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.opts.Addr
}

// Serve runs the SSH server until ctx is cancelled, then shuts it down
func (s *Server) Serve(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.opts.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
