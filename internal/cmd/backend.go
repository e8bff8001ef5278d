package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/xray-forge/xrf-shell/internal/adapters/bridge"
	"github.com/xray-forge/xrf-shell/internal/adapters/localbackend"
	"github.com/xray-forge/xrf-shell/internal/logging"
)

// BackendCmd serves the built-in backend as JSON-RPC over stdin/stdout, so
// it can be started by another xrf process with --backend.
type BackendCmd struct {
	StreamsAddr string `help:"Address streamed resources are served on; clients set --blob-base-url to match" default:"127.0.0.1:23235"`
}

// Run executes the backend command
func (b *BackendCmd) Run(ctx context.Context) error {
	router, backend := localbackend.NewRouter()

	streams, err := localbackend.ListenStreams(ctx, b.StreamsAddr, backend)
	if err != nil {
		return err
	}
	defer streams.Close()

	logging.Logger.Info("Serving backend over stdio", "commands", router.Commands(), "streams", streams.BaseURL())
	err = bridge.Serve(ctx, bridge.Transport(os.Stdin, os.Stdout), router)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
