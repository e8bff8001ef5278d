package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/xray-forge/xrf-shell/test/integration/harness"
)

func TestTree(t *testing.T) {
	files := map[string]string{
		"resources.db0":                     "packed",
		"gamedata/configs/system.ltx":       "[section]\n",
		"gamedata/configs/misc/items.ltx":   "[item]\n",
		"gamedata/scripts/_g.script":        "-- globals\n",
		"gamedata/textures/ui/ui_icons.dds": "dds",
	}

	tests := []struct {
		name         string
		args         func(project string) []string
		wantExitCode int
		wantStdout   []string
		notStdout    []string
		wantStderr   string
	}{
		{
			name:       "prints the whole project",
			args:       func(project string) []string { return []string{"tree", project} },
			wantStdout: []string{"gamedata/", "  configs/", "    system.ltx", "_g.script", "1 archives, 4 of 4 files shown"},
		},
		{
			name:       "filter keeps matching files and their folders",
			args:       func(project string) []string { return []string{"tree", project, "--filter", "**/*.ltx"} },
			wantStdout: []string{"system.ltx", "items.ltx", "2 of 4 files shown"},
			notStdout:  []string{"_g.script", "textures/"},
		},
		{
			name:         "invalid filter fails",
			args:         func(project string) []string { return []string{"tree", project, "-f", "[a-"} },
			wantExitCode: 1,
			wantStderr:   "pattern",
		},
		{
			name:         "missing project fails",
			args:         func(project string) []string { return []string{"tree", filepath.Join(project, "missing")} },
			wantExitCode: 1,
			wantStderr:   "failed to open archives project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			project := harness.NewArchivesProject(t, files)

			result := harness.RunCommand(t, env, tt.args(project)...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}
			for _, want := range tt.wantStdout {
				harness.AssertStdoutContains(t, result, want)
			}
			for _, unexpected := range tt.notStdout {
				harness.AssertStdoutNotContains(t, result, unexpected)
			}
			if tt.wantStderr != "" {
				harness.AssertStderrContains(t, result, tt.wantStderr)
			}
		})
	}
}

func TestExports_RequiresExternalBackend(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "exports", "conditions.script", "dialogs.script", "effects.script")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "requires an external backend")
}
