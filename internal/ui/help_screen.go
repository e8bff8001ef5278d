package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xray-forge/xrf-shell/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Navigation") + "\n")
	b.WriteString(renderBinding(keys.Navigation.Up.Binding))
	b.WriteString(renderBinding(keys.Navigation.Down.Binding))
	b.WriteString(renderBinding(keys.Navigation.Expand.Binding))
	b.WriteString(renderBinding(keys.Navigation.Collapse.Binding))
	b.WriteString(renderBinding(keys.Navigation.Select.Binding))
	b.WriteString(renderBinding(keys.Navigation.Filter.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Editors") + "\n")
	b.WriteString(renderBinding(keys.Editor.Open.Binding))
	b.WriteString(renderBinding(keys.Editor.Close.Binding))
	b.WriteString(renderBinding(keys.Editor.Retry.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Configs editor") + "\n")
	b.WriteString(renderBinding(keys.Editor.Format.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Icons editor") + "\n")
	b.WriteString(renderBinding(keys.Editor.ToggleGrid.Binding))
	b.WriteString(renderBinding(keys.Editor.GridLarger.Binding))
	b.WriteString(renderBinding(keys.Editor.GridSmaller.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Application.Back.Binding))
	b.WriteString(renderBinding(keys.Application.Help.Binding))
	b.WriteString(renderBinding(keys.Application.Quit.Binding))
	b.WriteString(renderBinding(keys.Application.ForceQuit.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Status Indicators (read-only)") + "\n")
	b.WriteString(renderShortcut("○", "nothing opened"))
	b.WriteString(renderShortcut("◐", "loading or closing"))
	b.WriteString(renderShortcut("●", "ready"))
	b.WriteString(renderShortcut("✗", "failed, press retry"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 5 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-7, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Application.Back.Binding, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
