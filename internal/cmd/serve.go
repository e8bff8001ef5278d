package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	Addr string `help:"Address to listen on" default:"${serve_addr}"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI, ctx context.Context) error {
	if s.Addr == config.DefaultServeAddr && cli.settings != nil && cli.settings.ServeAddr != "" {
		s.Addr = cli.settings.ServeAddr
	}

	keys, err := cli.keys()
	if err != nil {
		return err
	}

	container, err := cli.Container(ctx)
	if err != nil {
		return err
	}

	errorClearDelay := config.DefaultErrorClearDelay
	if cli.settings != nil && cli.settings.ErrorClearDelay != nil {
		errorClearDelay = *cli.settings.ErrorClearDelay
	}

	srv, err := server.NewServer(container.Shell, server.Options{
		Addr:            s.Addr,
		ErrorClearDelay: time.Duration(errorClearDelay) * time.Second,
		Keys:            keys,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logging.Logger.Info("Starting xrf SSH server", "addr", srv.Addr())
	fmt.Printf("SSH server listening on %s (authorized keys: %s)\n", srv.Addr(), config.GetAuthorizedKeysPath())
	return srv.Serve(ctx)
}
