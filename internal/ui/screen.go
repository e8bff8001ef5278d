package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/theme"
)

// editorScreen renders one editor and drives its resource session
type editorScreen interface {
	Kind() domain.EditorKind
	Status() domain.SessionStatus
	// Open starts opening the resource located by paths
	Open(paths map[string]string) tea.Cmd
	Close() tea.Cmd
	// Retry repeats the last open or close
	Retry() tea.Cmd
	// Refresh rebuilds derived views after a snapshot change
	Refresh()
	// Update handles screen specific messages and reports whether msg was consumed
	Update(msg tea.Msg) (tea.Cmd, bool)
	View(width, height int) string
}

// operations remembers the last issued operation of a screen so it can be retried
type operations struct {
	ctx  context.Context
	last func(ctx context.Context)
}

func (o *operations) run(fn func(ctx context.Context)) tea.Cmd {
	o.last = fn
	ctx := o.ctx
	return func() tea.Msg {
		fn(ctx)
		return nil
	}
}

// Retry repeats the last operation; it is a no-op before the first one
func (o *operations) Retry() tea.Cmd {
	if o.last == nil {
		return nil
	}
	return o.run(o.last)
}

// statusIcon returns the indicator of a session status
func statusIcon(status domain.SessionStatus) string {
	switch status {
	case domain.StatusLoading:
		return "◐"
	case domain.StatusReady:
		return "●"
	case domain.StatusFailed:
		return "✗"
	default:
		return "○"
	}
}

// renderSnapshot renders the common part of every editor screen: a hint when
// nothing is opened, a spinner while loading, the error after a failure, and
// the content whenever a value is held.
func renderSnapshot[T any](snapshot domain.Snapshot[T], keys *KeyMap, spinnerView string, width int, content func() string) string {
	var b strings.Builder

	switch snapshot.Status {
	case domain.StatusIdle:
		b.WriteString(theme.MutedStyle.Render("Nothing opened. Press " + keys.Editor.Open.Binding.Help().Key + " to open."))
		return b.String()
	case domain.StatusLoading:
		b.WriteString(spinnerView + " " + theme.StatusStyle(domain.StatusLoading).Render("Loading..."))
	case domain.StatusFailed:
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(snapshot.Err, width)))
		b.WriteString("\n" + theme.MutedStyle.Render("Press "+keys.Editor.Retry.Binding.Help().Key+" to retry."))
	}

	if snapshot.HasValue {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(content())
	}
	return b.String()
}

// treeFilter is the glob filter input shown above a tree
type treeFilter struct {
	active  bool
	err     error
	input   textinput.Model
	pattern string
}

func newTreeFilter() treeFilter {
	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "glob, e.g. **/*.ltx"
	ti.CharLimit = 120
	ti.Width = 40
	return treeFilter{input: ti}
}

// Update handles the filter keys. changed is true when the pattern was applied.
func (f *treeFilter) Update(msg tea.Msg, keys *KeyMap) (cmd tea.Cmd, consumed, changed bool) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if !f.active {
		if isKey && key.Matches(keyMsg, keys.Navigation.Filter.Binding) {
			f.active = true
			return f.input.Focus(), true, false
		}
		return nil, false, false
	}

	if isKey {
		switch keyMsg.Type {
		case tea.KeyEnter:
			f.active = false
			f.input.Blur()
			f.pattern = strings.TrimSpace(f.input.Value())
			return nil, true, true
		case tea.KeyEsc:
			f.active = false
			f.input.Blur()
			f.input.SetValue(f.pattern)
			return nil, true, false
		}
	}

	f.input, cmd = f.input.Update(msg)
	return cmd, true, false
}

func (f *treeFilter) View() string {
	switch {
	case f.active:
		return f.input.View()
	case f.err != nil:
		return theme.ErrorStyle.Render(f.err.Error())
	case f.pattern != "":
		return theme.LabelStyle.Render("Filter: ") + theme.ValueStyle.Render(f.pattern)
	}
	return ""
}

// renderFields renders label/value pairs as aligned lines
func renderFields(fields [][2]string) string {
	width := 0
	for _, field := range fields {
		width = max(width, len(field[0]))
	}

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		label := field[0] + ":" + strings.Repeat(" ", width-len(field[0])+1)
		lines = append(lines, theme.LabelStyle.Render(label)+theme.ValueStyle.Render(field[1]))
	}
	return strings.Join(lines, "\n")
}
