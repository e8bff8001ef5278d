package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/services"
	"github.com/xray-forge/xrf-shell/internal/theme"
)

// gridStep is the grid size change of one grid_larger or grid_smaller press
const gridStep = 5

// equipmentScreen draws the equipment sprite as a map of grid cells, one
// character per cell, and lists the inventory sections placed on it.
type equipmentScreen struct {
	operations
	cursor  int
	editor  *services.EquipmentEditor
	keys    *KeyMap
	spinner func() string
}

func newEquipmentScreen(ctx context.Context, editor *services.EquipmentEditor, keys *KeyMap, spinner func() string) *equipmentScreen {
	return &equipmentScreen{
		operations: operations{ctx: ctx},
		editor:     editor,
		keys:       keys,
		spinner:    spinner,
	}
}

func (s *equipmentScreen) Kind() domain.EditorKind { return domain.EditorEquipment }

func (s *equipmentScreen) Status() domain.SessionStatus {
	return s.editor.Sprite().Snapshot().Status
}

func (s *equipmentScreen) Open(paths map[string]string) tea.Cmd {
	sprite, systemLtx := paths["sprite"], paths["systemLtx"]
	return s.run(func(ctx context.Context) { s.editor.Open(ctx, sprite, systemLtx) })
}

func (s *equipmentScreen) Close() tea.Cmd {
	return s.run(func(ctx context.Context) { s.editor.Close(ctx) })
}

func (s *equipmentScreen) Refresh() {
	s.cursor = min(s.cursor, max(len(s.descriptors())-1, 0))
}

func (s *equipmentScreen) descriptors() []domain.InventorySpriteDescriptor {
	snapshot := s.editor.Sprite().Snapshot()
	if !snapshot.HasValue || snapshot.Value == nil {
		return nil
	}
	return snapshot.Value.Descriptors
}

func (s *equipmentScreen) Update(msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}

	grid := s.editor.Grid().Snapshot().Value
	switch {
	case key.Matches(keyMsg, s.keys.Editor.ToggleGrid.Binding):
		s.editor.ToggleGrid()
	case key.Matches(keyMsg, s.keys.Editor.GridLarger.Binding):
		s.editor.SetGridSize(grid.Size + gridStep)
	case key.Matches(keyMsg, s.keys.Editor.GridSmaller.Binding):
		s.editor.SetGridSize(grid.Size - gridStep)
	case key.Matches(keyMsg, s.keys.Navigation.Up.Binding):
		s.cursor = max(s.cursor-1, 0)
	case key.Matches(keyMsg, s.keys.Navigation.Down.Binding):
		s.cursor = min(s.cursor+1, max(len(s.descriptors())-1, 0))
	default:
		return nil, false
	}
	return nil, true
}

func (s *equipmentScreen) View(width, height int) string {
	snapshot := s.editor.Sprite().Snapshot()
	grid := s.editor.Grid().Snapshot().Value

	return renderSnapshot(snapshot, s.keys, s.spinner(), width, func() string {
		sprite := snapshot.Value
		summary := theme.LabelStyle.Render(sprite.Name) + "\n" + theme.MutedStyle.Render(fmt.Sprintf(
			"%d sections • grid %dpx • %s",
			len(sprite.Descriptors),
			grid.Size,
			gridVisibility(grid.Visible)))

		listWidth := min(width/3, 40)
		list := s.renderList(listWidth, height-6)
		spriteMap := renderSpriteMap(sprite, grid, s.cursor, width-listWidth-2, height-6)

		body := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(listWidth).Render(list), "  ", spriteMap)
		return summary + "\n\n" + body + "\n\n" + s.details(grid)
	})
}

func gridVisibility(visible bool) string {
	if visible {
		return "grid shown"
	}
	return "grid hidden"
}

func (s *equipmentScreen) renderList(width, height int) string {
	descriptors := s.descriptors()
	if len(descriptors) == 0 {
		return theme.MutedStyle.Render("(no sections)")
	}

	height = max(height, 1)
	offset := 0
	if s.cursor >= height {
		offset = s.cursor - height + 1
	}
	end := min(offset+height, len(descriptors))

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		line := descriptors[i].Section
		if len([]rune(line)) > width {
			line = string([]rune(line)[:width])
		}
		style := theme.TreeLeafStyle
		if i == s.cursor {
			style = theme.TreeSelectedStyle
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (s *equipmentScreen) details(grid domain.GridSettings) string {
	descriptors := s.descriptors()
	if s.cursor >= len(descriptors) {
		return ""
	}

	d := descriptors[s.cursor]
	bounds := d.Bounds(grid.Size)
	return theme.PanelStyle.Render(renderFields([][2]string{
		{"Section", d.Section},
		{"Cell", fmt.Sprintf("%d, %d", d.X, d.Y)},
		{"Size", fmt.Sprintf("%d x %d", d.W, d.H)},
		{"Pixels", fmt.Sprintf("(%d, %d) - (%d, %d)", bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)},
	}))
}

// renderSpriteMap draws one character per grid cell of the sprite. The cells
// of the selected section are solid, other sections are shaded and empty
// cells show a dot while the grid is visible.
func renderSpriteMap(sprite *domain.EquipmentSprite, grid domain.GridSettings, selected, width, height int) string {
	if sprite.Image == nil || grid.Size <= 0 {
		return ""
	}

	size := sprite.Image.Bounds().Size()
	cols := min(max(size.X/grid.Size, 1), max(width, 1))
	rows := min(max(size.Y/grid.Size, 1), max(height, 1))

	// 0 empty, 1 section, 2 selected section
	cells := make([]int, cols*rows)
	for i, d := range sprite.Descriptors {
		mark := 1
		if i == selected {
			mark = 2
		}
		for y := max(d.Y, 0); y < min(d.Y+d.H, rows); y++ {
			for x := max(d.X, 0); x < min(d.X+d.W, cols); x++ {
				cells[y*cols+x] = max(cells[y*cols+x], mark)
			}
		}
	}

	empty := " "
	if grid.Visible {
		empty = theme.GridStyle.Render("·")
	}
	section := theme.IconStyle.Render("▒")
	selectedSection := theme.TreeSelectedStyle.Render("█")

	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			switch cells[y*cols+x] {
			case 2:
				b.WriteString(selectedSection)
			case 1:
				b.WriteString(section)
			default:
				b.WriteString(empty)
			}
		}
		if y < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
