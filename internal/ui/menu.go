package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/theme"
)

// Menu lists the editors with the status of their sessions
type Menu struct {
	cursor int
	keys   *KeyMap
}

// NewMenu creates the editor menu
func NewMenu(keys *KeyMap) *Menu {
	return &Menu{keys: keys}
}

// Selected returns the editor under the cursor
func (m *Menu) Selected() domain.Editor {
	return domain.Editors[m.cursor]
}

// Update moves the cursor and turns select into an openEditorMsg
func (m *Menu) Update(msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}

	switch {
	case key.Matches(keyMsg, m.keys.Navigation.Up.Binding):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(keyMsg, m.keys.Navigation.Down.Binding):
		m.cursor = min(m.cursor+1, len(domain.Editors)-1)
	case key.Matches(keyMsg, m.keys.Navigation.Select.Binding, m.keys.Navigation.Expand.Binding):
		kind := m.Selected().Kind
		return func() tea.Msg { return openEditorMsg{Kind: kind} }, true
	default:
		return nil, false
	}
	return nil, true
}

// View renders the editors, marking each with the status of its session
func (m *Menu) View(statuses map[domain.EditorKind]domain.SessionStatus) string {
	var b strings.Builder
	for i, editor := range domain.Editors {
		status := statuses[editor.Kind]
		icon := theme.StatusStyle(status).Render(statusIcon(status))

		style := theme.MenuItemStyle
		if i == m.cursor {
			style = theme.MenuItemSelectedStyle
		}
		b.WriteString(icon + " " + style.Render(editor.Title) + "\n")
		b.WriteString(theme.MenuDescStyle.Render(editor.Description) + "\n")
		if i == m.cursor {
			b.WriteString(theme.MenuDescStyle.Render(theme.MutedStyle.Render(editor.HelpLink)) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
