package integration_test

import (
	"testing"

	"github.com/xray-forge/xrf-shell/test/integration/harness"
)

func TestSettingsKeysList(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, env *harness.TestEnvironment)
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "list shows defaults when no settings",
			args: []string{"settings", "keys", "list"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "toggle_grid")
				harness.AssertStdoutContains(t, result, "left, h")
				harness.AssertStdoutContains(t, result, "xrf settings keys set")
			},
		},
		{
			name: "list JSON format with custom keys",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "help", "H"))
			},
			args: []string{"settings", "keys", "list", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var keys map[string]map[string]any
				harness.AssertValidJSON(t, result, &keys)

				help, ok := keys["help"]
				if !ok {
					t.Fatal("Expected 'help' key in output")
				}
				custom, ok := help["custom"].([]any)
				if !ok || len(custom) != 1 || custom[0] != "H" {
					t.Errorf("Expected custom to be ['H'], got %v", help["custom"])
				}
				if _, ok := keys["quit"]["custom"]; ok {
					t.Error("Expected 'quit' to have no custom binding")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestSettingsKeysSet(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		wantStdout   string
		wantStderr   string
	}{
		{
			name:       "set valid key",
			args:       []string{"settings", "keys", "set", "toggle_grid", "G"},
			wantStdout: "Set 'toggle_grid' to: G",
		},
		{
			name:       "set multiple keys with comma",
			args:       []string{"settings", "keys", "set", "up", "up, k ,w"},
			wantStdout: "Set 'up' to: up, k, w",
		},
		{
			name:         "set invalid key name",
			args:         []string{"settings", "keys", "set", "invalid_key", "a"},
			wantExitCode: 1,
			wantStderr:   "unknown key",
		},
		{
			name:         "set empty value fails",
			args:         []string{"settings", "keys", "set", "retry", " , "},
			wantExitCode: 1,
			wantStderr:   "cannot be empty",
		},
		{
			name: "set conflicting key fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "close", "z"))
			},
			args:         []string{"settings", "keys", "set", "retry", "z"},
			wantExitCode: 1,
			wantStderr:   "conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}
			if tt.wantStdout != "" {
				harness.AssertStdoutContains(t, result, tt.wantStdout)
			}
			if tt.wantStderr != "" {
				harness.AssertStderrContains(t, result, tt.wantStderr)
			}
		})
	}
}
