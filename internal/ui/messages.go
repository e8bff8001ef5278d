package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xray-forge/xrf-shell/internal/domain"
)

// sessionsChangedMsg is sent when any editor session published a snapshot.
// Screens read the current snapshots when rendering, so it carries nothing.
type sessionsChangedMsg struct{}

// openEditorMsg requests switching to the screen of an editor
type openEditorMsg struct {
	Kind domain.EditorKind
}

// openRequestMsg carries the paths collected by the open form
type openRequestMsg struct {
	Kind  domain.EditorKind
	Paths map[string]string
}

// operationFailedMsg reports a failure that no session publishes, such as a
// failed lookup of recent resources
type operationFailedMsg struct {
	err error
}

// showHelpMsg requests showing the help screen
type showHelpMsg struct{}

func failed(err error) tea.Cmd {
	return func() tea.Msg { return operationFailedMsg{err: err} }
}
