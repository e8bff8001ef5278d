package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/services"
	"github.com/xray-forge/xrf-shell/internal/theme"
	"github.com/xray-forge/xrf-shell/internal/tree"
)

// exportsScreen browses conditions, dialogs and effects grouped by file
type exportsScreen struct {
	operations
	editor  *services.ExportsEditor
	filter  treeFilter
	keys    *KeyMap
	spinner func() string
	tree    *TreeView[services.ExportEntry]
}

func newExportsScreen(ctx context.Context, editor *services.ExportsEditor, keys *KeyMap, spinner func() string) *exportsScreen {
	return &exportsScreen{
		operations: operations{ctx: ctx},
		editor:     editor,
		filter:     newTreeFilter(),
		keys:       keys,
		spinner:    spinner,
		tree:       NewTreeView[services.ExportEntry](keys),
	}
}

func (s *exportsScreen) Kind() domain.EditorKind { return domain.EditorExports }

func (s *exportsScreen) Status() domain.SessionStatus {
	return s.editor.Declarations().Snapshot().Status
}

func (s *exportsScreen) Open(paths map[string]string) tea.Cmd {
	conditions, dialogs, effects := paths["conditions"], paths["dialogs"], paths["effects"]
	return s.run(func(ctx context.Context) { s.editor.Open(ctx, conditions, dialogs, effects) })
}

func (s *exportsScreen) Close() tea.Cmd {
	return s.run(func(ctx context.Context) { s.editor.Close(ctx) })
}

func (s *exportsScreen) Refresh() {
	root, err := s.editor.Tree(s.filter.pattern)
	s.filter.err = err
	if err == nil {
		s.tree.SetRoot(root)
	}
}

func (s *exportsScreen) Update(msg tea.Msg) (tea.Cmd, bool) {
	cmd, consumed, changed := s.filter.Update(msg, s.keys)
	if changed {
		s.Refresh()
		if s.filter.pattern != "" {
			s.tree.ExpandAll()
		}
	}
	if consumed {
		return cmd, true
	}
	return nil, s.tree.Update(msg)
}

func (s *exportsScreen) View(width, height int) string {
	snapshot := s.editor.Declarations().Snapshot()
	return renderSnapshot(snapshot, s.keys, s.spinner(), width, func() string {
		declarations := snapshot.Value
		summary := theme.MutedStyle.Render(fmt.Sprintf("%d conditions • %d dialogs • %d effects",
			len(declarations.Conditions),
			len(declarations.Dialogs),
			len(declarations.Effects)))

		s.tree.SetHeight(height - 5)
		treeWidth := width / 2
		left := lipgloss.NewStyle().Width(treeWidth).Render(s.tree.View(treeWidth))
		body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", s.details(width-treeWidth-2))

		if filter := s.filter.View(); filter != "" {
			return summary + "\n" + filter + "\n\n" + body
		}
		return summary + "\n\n" + body
	})
}

func (s *exportsScreen) details(width int) string {
	node := s.tree.Selected()
	if node == nil {
		return ""
	}
	if node.IsFolder() {
		return theme.PanelStyle.Width(width).Render(renderFields([][2]string{
			{"Group", node.ID},
			{"Declarations", fmt.Sprintf("%d", tree.CountLeaves(node))},
		}))
	}

	entry := node.Payload
	descriptor := entry.Descriptor
	fields := [][2]string{
		{"Name", descriptor.Name},
		{"Kind", entry.Kind},
		{"Location", fmt.Sprintf("%s:%d:%d", descriptor.Filepath, descriptor.Line, descriptor.Col)},
	}
	if descriptor.Comment != "" {
		fields = append(fields, [2]string{"Comment", descriptor.Comment})
	}

	params := make([]string, 0, len(descriptor.Parameters))
	for _, p := range descriptor.Parameters {
		param := p.Name + ": " + p.Typing
		if p.Comment != "" {
			param += " -- " + p.Comment
		}
		params = append(params, param)
	}
	if len(params) > 0 {
		fields = append(fields, [2]string{"Parameters", strings.Join(params, ", ")})
	}

	return theme.PanelStyle.Width(width).Render(renderFields(fields))
}
