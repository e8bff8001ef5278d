package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/xray-forge/xrf-shell/internal/cmd"
	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/version"
)

func main() {
	// Load settings from ~/.xrf/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Container is created lazily by commands after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	kctx := kong.Parse(&cli,
		kong.Name("xrf"),
		kong.Description(version.Tagline),
		kong.Vars{
			"serve_addr": config.DefaultServeAddr,
			"version":    version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	runErr := kctx.Run()
	if err := cli.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to release resources: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		stop()
		os.Exit(1)
	}
}
