package integration_test

import (
	"testing"

	"github.com/xray-forge/xrf-shell/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file: "+env.XrfHome)
				harness.AssertStdoutContains(t, result, "Example settings.json:")
				harness.AssertStdoutContains(t, result, "grid_size")
				harness.AssertStdoutContains(t, result, "recent_limit")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var meta map[string]any
				harness.AssertValidJSON(t, result, &meta)
				if _, ok := meta["settings_file"]; !ok {
					t.Error("Expected 'settings_file' in output")
				}
				if _, ok := meta["format"].(map[string]any); !ok {
					t.Error("Expected 'format' object in output")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, env, result)
		})
	}
}
