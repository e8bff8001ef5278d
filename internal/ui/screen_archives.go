package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/services"
	"github.com/xray-forge/xrf-shell/internal/theme"
	"github.com/xray-forge/xrf-shell/internal/tree"
)

// archivesScreen browses the files of an archives project
type archivesScreen struct {
	operations
	editor  *services.ArchiveEditor
	filter  treeFilter
	keys    *KeyMap
	spinner func() string
	tree    *TreeView[domain.ArchiveFileDescriptor]
}

func newArchivesScreen(ctx context.Context, editor *services.ArchiveEditor, keys *KeyMap, spinner func() string) *archivesScreen {
	return &archivesScreen{
		operations: operations{ctx: ctx},
		editor:     editor,
		filter:     newTreeFilter(),
		keys:       keys,
		spinner:    spinner,
		tree:       NewTreeView[domain.ArchiveFileDescriptor](keys),
	}
}

func (s *archivesScreen) Kind() domain.EditorKind { return domain.EditorArchives }

func (s *archivesScreen) Status() domain.SessionStatus {
	return s.editor.Project().Snapshot().Status
}

func (s *archivesScreen) Open(paths map[string]string) tea.Cmd {
	path := paths["path"]
	return s.run(func(ctx context.Context) { s.editor.Open(ctx, path) })
}

func (s *archivesScreen) Close() tea.Cmd {
	return s.run(func(ctx context.Context) { s.editor.Close(ctx) })
}

func (s *archivesScreen) Refresh() {
	root, err := s.editor.Tree(s.filter.pattern)
	s.filter.err = err
	if err == nil {
		s.tree.SetRoot(root)
	}
}

func (s *archivesScreen) Update(msg tea.Msg) (tea.Cmd, bool) {
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

func (s *archivesScreen) View(width, height int) string {
	snapshot := s.editor.Project().Snapshot()
	return renderSnapshot(snapshot, s.keys, s.spinner(), width, func() string {
		project := snapshot.Value
		realSize, compressedSize := project.TotalSize()

		summary := theme.LabelStyle.Render(project.Path) + "\n" + theme.MutedStyle.Render(fmt.Sprintf(
			"%d archives • %d files • %s (%s packed)",
			len(project.Archives),
			len(project.Files),
			humanize.IBytes(realSize),
			humanize.IBytes(compressedSize)))

		s.tree.SetHeight(height - 6)
		treeWidth := width / 2
		left := lipgloss.NewStyle().Width(treeWidth).Render(s.tree.View(treeWidth))
		right := s.details(width - treeWidth - 2)

		body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
		if filter := s.filter.View(); filter != "" {
			return summary + "\n" + filter + "\n\n" + body
		}
		return summary + "\n\n" + body
	})
}

func (s *archivesScreen) details(width int) string {
	node := s.tree.Selected()
	if node == nil {
		return ""
	}

	if node.IsFolder() {
		return theme.PanelStyle.Width(width).Render(renderFields([][2]string{
			{"Folder", node.ID},
			{"Files", fmt.Sprintf("%d", tree.CountLeaves(node))},
		}))
	}

	file := node.Payload
	compression := "stored"
	if file.IsCompressed() {
		compression = "compressed"
	}
	return theme.PanelStyle.Width(width).Render(renderFields([][2]string{
		{"Name", file.Name},
		{"Size", humanize.IBytes(uint64(file.SizeReal))},
		{"Packed", fmt.Sprintf("%s (%s)", humanize.IBytes(uint64(file.SizeCompressed)), compression)},
		{"CRC", fmt.Sprintf("%08x", file.CRC)},
		{"Offset", fmt.Sprintf("%d", file.Offset)},
		{"Source", file.Source},
		{"Destination", file.Destination},
	}))
}
