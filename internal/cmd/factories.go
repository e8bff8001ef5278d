package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xray-forge/xrf-shell/internal/adapters/blob"
	"github.com/xray-forge/xrf-shell/internal/adapters/bridge"
	"github.com/xray-forge/xrf-shell/internal/adapters/localbackend"
	adapterstorage "github.com/xray-forge/xrf-shell/internal/adapters/storage"
	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/metrics"
	"github.com/xray-forge/xrf-shell/internal/ports"
	"github.com/xray-forge/xrf-shell/internal/services"
)

// shellCloseTimeout bounds the teardown of opened resources at exit
const shellCloseTimeout = 5 * time.Second

// localStreamsAddr is where the built-in backend serves streamed resources
const localStreamsAddr = "127.0.0.1:0"

// ContainerOptions configures NewContainer
type ContainerOptions struct {
	// Backend is the command line of an external backend; empty uses the built-in one
	Backend     []string
	BlobBaseURL string
	Grid        domain.GridSettings
	RecentLimit int
}

// Container holds all dependencies for the application
type Container struct {
	Recent *services.RecentService
	Shell  *services.Shell

	// Internal - for cleanup only, closed in reverse order
	closers []func() error
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(ctx context.Context, opts ContainerOptions) (*Container, error) {
	recentRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	c := &Container{
		Recent:  services.NewRecentService(recentRepo, recentRepo, opts.RecentLimit),
		closers: []func() error{recentRepo.Close},
	}

	fetcher := blob.NewFetcher(opts.BlobBaseURL)
	backend, err := c.connectBackend(ctx, opts, fetcher)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Shell = services.NewShell(services.ShellParams{
		Blobs:    fetcher,
		Bridge:   bridge.NewInstrumented(backend),
		Decoder:  blob.NewDecoder(),
		Grid:     opts.Grid,
		Observer: metrics.NewSessionObserver(),
		Recent:   c.Recent,
	})
	return c, nil
}

// connectBackend starts the external backend, or wires the built-in one with
// a local stream server for the resources it streams.
func (c *Container) connectBackend(ctx context.Context, opts ContainerOptions, fetcher *blob.Fetcher) (ports.Bridge, error) {
	if len(opts.Backend) > 0 {
		rpc, err := bridge.Dial(ctx, opts.Backend)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to backend %q: %w", joinCommandLine(opts.Backend), err)
		}
		c.closers = append(c.closers, rpc.Close)
		return rpc, nil
	}

	router, backend := localbackend.NewRouter()
	streams, err := localbackend.ListenStreams(ctx, localStreamsAddr, backend)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, streams.Close)

	if opts.BlobBaseURL == "" {
		fetcher.SetBaseURL(streams.BaseURL())
	}
	logging.Logger.Info("Using built-in backend", "commands", len(router.Commands()), "streams", streams.BaseURL())
	return router, nil
}

// Close releases the opened resources, then everything the container holds
func (c *Container) Close() error {
	var errs []error

	if c.Shell != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shellCloseTimeout)
		errs = append(errs, c.Shell.Close(ctx))
		cancel()
	}

	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	return errors.Join(errs...)
}
