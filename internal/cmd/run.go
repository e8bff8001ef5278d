package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in the header)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI, ctx context.Context) error {
	if r.ErrorClearDelay == config.DefaultErrorClearDelay && cli.settings != nil && cli.settings.ErrorClearDelay != nil {
		r.ErrorClearDelay = *cli.settings.ErrorClearDelay
	}

	keys, err := cli.keys()
	if err != nil {
		return err
	}

	container, err := cli.Container(ctx)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting xrf TUI")
	model := ui.NewModelFromConfig(ui.ModelConfig{
		Context:         ctx,
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		Keys:            keys,
		Shell:           container.Shell,
	})
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
