package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/metrics"
	"github.com/xray-forge/xrf-shell/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Backend     []string         `help:"Backend command line, comma separated (empty = built-in local backend)" env:"XRF_BACKEND"`
	BlobBaseURL string           `help:"Base URL streamed resources of an external backend are fetched from" env:"XRF_BLOB_BASE_URL"`
	MetricsAddr string           `help:"Serve Prometheus metrics on this address" env:"XRF_METRICS_ADDR"`

	Run      RunCmd      `cmd:"" help:"Start the xrf TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the xrf TUI over SSH"`
	Tree     TreeCmd     `cmd:"tree" help:"Print the file tree of an archives project"`
	Exports  ExportsCmd  `cmd:"exports" help:"List conditions, dialogs and effects declared by scripts"`
	Configs  ConfigsCmd  `cmd:"configs" help:"Verify or format a folder of LTX configs"`
	Recent   RecentCmd   `cmd:"recent" help:"Manage recently opened resources"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings"`
	Local    BackendCmd  `cmd:"backend" help:"Serve the local backend over stdio" hidden:""`

	// Internal fields (not flags)
	container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Backend subprocesses inherit debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, strconv.Itoa(c.MaxLogFiles))
	}

	return nil
}

// applySettings fills flags left at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles && c.settings.MaxLogFiles != nil {
		if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
	}

	if !c.Debug && c.settings.Debug != nil && *c.settings.Debug {
		if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
			c.Debug = true
		}
	}

	// kong already applied env vars to these, so empty means neither flag nor env
	if len(c.Backend) == 0 && len(c.settings.Backend) > 0 {
		c.Backend = c.settings.Backend
	}
	if c.BlobBaseURL == "" {
		c.BlobBaseURL = c.settings.BlobBaseURL
	}
	if c.MetricsAddr == "" {
		c.MetricsAddr = c.settings.MetricsAddr
	}
}

// keys returns the validated custom key bindings
func (c *CLI) keys() (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	return c.settings.Keys, nil
}

// gridSettings returns the initial grid of the icons editor
func (c *CLI) gridSettings() domain.GridSettings {
	grid := domain.DefaultGridSettings()
	if c.settings == nil {
		return grid
	}
	if c.settings.GridSize != nil {
		grid.Size = domain.ClampGridSize(float64(*c.settings.GridSize))
	}
	if c.settings.GridVisible != nil {
		grid.Visible = *c.settings.GridVisible
	}
	return grid
}

// recentLimit returns how many recent resources are kept per editor
func (c *CLI) recentLimit() int {
	if c.settings != nil && c.settings.RecentLimit != nil {
		return *c.settings.RecentLimit
	}
	return config.DefaultRecentLimit
}

// Container builds the dependencies once and starts the metrics server
// when configured. It is closed by Close.
func (c *CLI) Container(ctx context.Context) (*Container, error) {
	if c.container != nil {
		return c.container, nil
	}

	if c.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, c.MetricsAddr); err != nil {
				logging.Logger.Error("Metrics server failed", "error", err, "addr", c.MetricsAddr)
			}
		}()
	}

	container, err := NewContainer(ctx, ContainerOptions{
		Backend:     c.Backend,
		BlobBaseURL: c.BlobBaseURL,
		Grid:        c.gridSettings(),
		RecentLimit: c.recentLimit(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}
	c.container = container
	return container, nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.container != nil {
		return c.container.Close()
	}
	return nil
}

func joinCommandLine(commandLine []string) string {
	return strings.Join(commandLine, " ")
}
