package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
)

func ptr[T any](v T) *T { return &v }

// unsetEnv clears key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestApplySettings(t *testing.T) {
	unsetEnv(t, logging.EnvDebug)
	unsetEnv(t, logging.EnvMaxLogFiles)

	tests := []struct {
		name     string
		cli      CLI
		settings *config.Settings
		want     CLI
	}{
		{
			name: "no settings keeps flags",
			cli:  CLI{MaxLogFiles: logging.DefaultMaxLogFiles},
			want: CLI{MaxLogFiles: logging.DefaultMaxLogFiles},
		},
		{
			name: "settings fill defaults",
			cli:  CLI{MaxLogFiles: logging.DefaultMaxLogFiles},
			settings: &config.Settings{
				Backend:     config.StringArray{"node", "cli.js"},
				BlobBaseURL: "http://127.0.0.1:9000",
				Debug:       ptr(true),
				MaxLogFiles: ptr(5),
				MetricsAddr: ":9100",
			},
			want: CLI{
				Backend:     []string{"node", "cli.js"},
				BlobBaseURL: "http://127.0.0.1:9000",
				Debug:       true,
				MaxLogFiles: 5,
				MetricsAddr: ":9100",
			},
		},
		{
			name: "flags win over settings",
			cli: CLI{
				Backend:     []string{"xrf-backend"},
				BlobBaseURL: "http://flag",
				MaxLogFiles: 7,
				MetricsAddr: ":1",
			},
			settings: &config.Settings{
				Backend:     config.StringArray{"node"},
				BlobBaseURL: "http://settings",
				Debug:       ptr(false),
				MaxLogFiles: ptr(5),
				MetricsAddr: ":2",
			},
			want: CLI{
				Backend:     []string{"xrf-backend"},
				BlobBaseURL: "http://flag",
				MaxLogFiles: 7,
				MetricsAddr: ":1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := tt.cli
			cli.SetSettings(tt.settings)

			cli.applySettings()

			assert.Equal(t, tt.want.Backend, cli.Backend)
			assert.Equal(t, tt.want.BlobBaseURL, cli.BlobBaseURL)
			assert.Equal(t, tt.want.Debug, cli.Debug)
			assert.Equal(t, tt.want.MaxLogFiles, cli.MaxLogFiles)
			assert.Equal(t, tt.want.MetricsAddr, cli.MetricsAddr)
		})
	}
}

func TestApplySettings_EnvWinsOverSettings(t *testing.T) {
	t.Setenv(logging.EnvMaxLogFiles, "3")

	cli := CLI{MaxLogFiles: logging.DefaultMaxLogFiles}
	cli.SetSettings(&config.Settings{MaxLogFiles: ptr(5)})

	cli.applySettings()

	assert.Equal(t, logging.DefaultMaxLogFiles, cli.MaxLogFiles)
}

func TestGridSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.Settings
		want     domain.GridSettings
	}{
		{
			name: "defaults",
			want: domain.DefaultGridSettings(),
		},
		{
			name:     "from settings",
			settings: &config.Settings{GridSize: ptr(64), GridVisible: ptr(false)},
			want:     domain.GridSettings{Size: 64, Visible: false},
		},
		{
			name:     "size is clamped",
			settings: &config.Settings{GridSize: ptr(1)},
			want:     domain.GridSettings{Size: domain.MinGridSize, Visible: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := CLI{}
			cli.SetSettings(tt.settings)
			assert.Equal(t, tt.want, cli.gridSettings())
		})
	}
}

func TestRecentLimit(t *testing.T) {
	cli := CLI{}
	assert.Equal(t, config.DefaultRecentLimit, cli.recentLimit())

	cli.SetSettings(&config.Settings{RecentLimit: ptr(3)})
	assert.Equal(t, 3, cli.recentLimit())
}

func TestKeys_RejectsConflicts(t *testing.T) {
	cli := CLI{}
	cli.SetSettings(&config.Settings{Keys: config.KeyBindingsConfig{
		"close": {"z"},
		"retry": {"z"},
	}})

	_, err := cli.keys()

	assert.ErrorContains(t, err, "invalid key bindings")
}

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{"up", "k"}, parseKeyValues(" up , k ,"))
	assert.Empty(t, parseKeyValues(" , "))
}

func TestFormatLocators(t *testing.T) {
	got := formatLocators(map[string]string{"sprite": "ui_icon_equipment.dds", "systemLtx": "system.ltx"})
	assert.Equal(t, "sprite=ui_icon_equipment.dds systemLtx=system.ltx", got)
	assert.Empty(t, formatLocators(nil))
}
