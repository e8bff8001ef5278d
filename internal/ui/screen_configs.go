package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/services"
	"github.com/xray-forge/xrf-shell/internal/theme"
)

// configsScreen verifies a configs folder and lists the issues found.
// Opening a folder verifies it; the format key formats the last run folder.
type configsScreen struct {
	operations
	editor  *services.ConfigsEditor
	keys    *KeyMap
	spinner func() string
}

func newConfigsScreen(ctx context.Context, editor *services.ConfigsEditor, keys *KeyMap, spinner func() string) *configsScreen {
	return &configsScreen{
		operations: operations{ctx: ctx},
		editor:     editor,
		keys:       keys,
		spinner:    spinner,
	}
}

func (s *configsScreen) Kind() domain.EditorKind { return domain.EditorConfigs }

func (s *configsScreen) Status() domain.SessionStatus {
	return s.editor.Report().Snapshot().Status
}

func (s *configsScreen) Open(paths map[string]string) tea.Cmd {
	path := paths["path"]
	return s.run(func(ctx context.Context) { s.editor.Verify(ctx, path) })
}

func (s *configsScreen) Close() tea.Cmd {
	return s.run(func(ctx context.Context) { s.editor.Close(ctx) })
}

func (s *configsScreen) Refresh() {}

func (s *configsScreen) Update(msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(keyMsg, s.keys.Editor.Format.Binding) {
		return nil, false
	}

	snapshot := s.editor.Report().Snapshot()
	if !snapshot.HasValue {
		return nil, true
	}
	path := snapshot.Value.Path
	return s.run(func(ctx context.Context) { s.editor.Format(ctx, path) }), true
}

func (s *configsScreen) View(width, height int) string {
	snapshot := s.editor.Report().Snapshot()
	return renderSnapshot(snapshot, s.keys, s.spinner(), width, func() string {
		report := snapshot.Value
		summary := theme.PanelStyle.Render(renderFields([][2]string{
			{"Folder", report.Path},
			{"Operation", report.Operation},
			{"Files", fmt.Sprintf("%d", report.Files)},
			{"Sections", fmt.Sprintf("%d", report.Sections)},
			{"Issues", fmt.Sprintf("%d", len(report.Issues))},
		}))

		if report.Valid() {
			return summary + "\n" + theme.StatusStyle(domain.StatusReady).Render("No issues found.")
		}
		return summary + "\n" + renderIssues(report.Issues, max(height-9, 1))
	})
}

// renderIssues lists at most limit issues, one per line
func renderIssues(issues []domain.ConfigIssue, limit int) string {
	lines := make([]string, 0, min(len(issues), limit)+1)
	for i, issue := range issues {
		if i == limit {
			lines = append(lines, theme.MutedStyle.Render(fmt.Sprintf("... %d more", len(issues)-limit)))
			break
		}

		location := issue.File
		if issue.Line > 0 {
			location = fmt.Sprintf("%s:%d", issue.File, issue.Line)
		}
		line := theme.LabelStyle.Render(location) + " "
		if issue.Section != "" {
			line += theme.MutedStyle.Render("["+issue.Section+"]") + " "
		}
		lines = append(lines, line+theme.ErrorStyle.Render(issue.Message))
	}
	return strings.Join(lines, "\n")
}
