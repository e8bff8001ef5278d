package ui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/services"
	"github.com/xray-forge/xrf-shell/internal/theme"
)

type uiState int

const (
	stateMenu uiState = iota
	stateEditor
	stateHelp
	stateOpenForm
)

// ModelConfig holds everything needed to build the root model
type ModelConfig struct {
	Context         context.Context
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	Shell           *services.Shell
}

type Model struct {
	active       editorScreen                        // Screen of the editor being shown
	ctx          context.Context                     // Context of bridge calls
	devMode      bool                                // Development mode (shows version info in the header)
	errorManager *ErrorManager                       // Error display and auto-clearing
	height       int
	help         help.Model                          // Short help bar
	helpScreen   *Dialog                             // Help screen dialog
	keys         KeyMap                              // Keyboard shortcuts
	menu         *Menu                               // Editor menu
	openForm     *Dialog                             // Open resource dialog
	screens      map[domain.EditorKind]editorScreen // Screens per editor
	shell        *services.Shell
	spinner      spinner.Model
	state        uiState
	tip          string
	watcher      *Watcher // Snapshot notifications
	width        int
}

// NewModelFromConfig creates the root model. It subscribes to every session
// of cfg.Shell until the model quits.
func NewModelFromConfig(cfg ModelConfig) *Model {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := &Model{
		ctx:          ctx,
		devMode:      cfg.DevMode,
		errorManager: NewErrorManager(cfg.ErrorClearDelay),
		help:         help.New(),
		keys:         NewKeyMap(cfg.Keys),
		shell:        cfg.Shell,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.SpinnerStyle)),
		state:   stateMenu,
		watcher: NewWatcher(cfg.Shell),
	}
	m.menu = NewMenu(&m.keys)

	spinnerView := func() string { return m.spinner.View() }
	m.screens = map[domain.EditorKind]editorScreen{
		domain.EditorArchives:  newArchivesScreen(ctx, cfg.Shell.Archives, &m.keys, spinnerView),
		domain.EditorConfigs:   newConfigsScreen(ctx, cfg.Shell.Configs, &m.keys, spinnerView),
		domain.EditorEquipment: newEquipmentScreen(ctx, cfg.Shell.Equipment, &m.keys, spinnerView),
		domain.EditorExports:   newExportsScreen(ctx, cfg.Shell.Exports, &m.keys, spinnerView),
		domain.EditorSpawn:     newSpawnScreen(ctx, cfg.Shell.Spawn, &m.keys, spinnerView),
	}

	if tips := GetTips(); len(tips) > 0 {
		m.tip = RenderTip(tips[rand.IntN(len(tips))])
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.watcher.Wait(), m.spinner.Tick, m.resume())
}

// resume restores the resources the backend still holds from a previous run
func (m *Model) resume() tea.Cmd {
	shell, ctx := m.shell, m.ctx
	return func() tea.Msg {
		if err := shell.Resume(ctx); err != nil {
			return operationFailedMsg{err: err}
		}
		return nil
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsChangedMsg:
		for _, screen := range m.screens {
			screen.Refresh()
		}
		return m, m.watcher.Wait()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case operationFailedMsg:
		logging.Logger.Warn("Operation failed", "error", msg.err)
		m.errorManager.SetError(msg.err)
		return m, m.errorManager.ClearAfterDelay()

	case openEditorMsg:
		m.active = m.screens[msg.Kind]
		m.state = stateEditor
		m.active.Refresh()
		return m, nil

	case openRequestMsg:
		screen := m.screens[msg.Kind]
		m.active = screen
		m.state = stateEditor
		logging.Logger.Info("Opening resource", "editor", msg.Kind, "paths", msg.Paths)
		return m, screen.Open(msg.Paths)

	case showHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updatedDialog.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	switch m.state {
	case stateEditor:
		return m.updateEditor(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateOpenForm:
		return m.updateOpenForm(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m *Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, consumed := m.menu.Update(msg); consumed {
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Application.Quit.Binding, m.keys.Application.ForceQuit.Binding):
			return m.quit()
		case key.Matches(keyMsg, m.keys.Application.Help.Binding):
			return m.Update(showHelpMsg{})
		}
	}
	return m, nil
}

func (m *Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Application.ForceQuit.Binding) {
		return m.quit()
	}

	if cmd, consumed := m.active.Update(msg); consumed {
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.Back.Binding):
		m.state = stateMenu
		m.active = nil
		return m, nil
	case key.Matches(keyMsg, m.keys.Application.Quit.Binding):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Application.Help.Binding):
		return m.Update(showHelpMsg{})
	case key.Matches(keyMsg, m.keys.Editor.Open.Binding):
		return m.showOpenForm(m.active.Kind())
	case key.Matches(keyMsg, m.keys.Editor.Close.Binding):
		return m, m.active.Close()
	case key.Matches(keyMsg, m.keys.Editor.Retry.Binding):
		return m, m.active.Retry()
	}
	return m, nil
}

// showOpenForm opens the path form, pre-filled with the latest resource of kind
func (m *Model) showOpenForm(kind domain.EditorKind) (tea.Model, tea.Cmd) {
	var prefill map[string]string
	if m.shell.Recent != nil {
		latest, err := m.shell.Recent.Latest(m.ctx, kind)
		if err != nil {
			logging.Logger.Warn("Failed to load latest resource", "editor", kind, "error", err)
		} else if latest != nil {
			prefill = latest.Locators
		}
	}

	title := string(kind)
	if editor := domain.GetEditorByKind(kind); editor != nil {
		title = fmt.Sprintf("Open in %s", editor.Title)
	}

	m.openForm = NewDialog(title, NewOpenForm(kind, prefill), m.devMode)
	m.state = stateOpenForm
	return m, m.openForm.Init()
}

func (m *Model) updateOpenForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.openForm.Update(msg)
	m.openForm = updated.(*Dialog)

	form, ok := m.openForm.Content().(*OpenForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	result := form.Result()
	m.openForm = nil
	m.state = stateEditor
	if result.Cancelled {
		return m, nil
	}
	return m, func() tea.Msg {
		return openRequestMsg{Kind: result.Kind, Paths: result.Paths}
	}
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.helpScreen = nil
		m.state = stateMenu
		if m.active != nil {
			m.state = stateEditor
		}
	}
	return m, cmd
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

// Close stops listening to session changes. It is safe to call more than once.
func (m *Model) Close() {
	m.watcher.Close()
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateOpenForm:
		if m.openForm != nil {
			return m.openForm.View()
		}
	case stateEditor:
		if m.active != nil {
			return m.frame(m.editorTitle(), m.active.View(m.width, max(m.height-10, 5)))
		}
	}
	return m.frame("", m.menu.View(m.shell.Status()))
}

func (m *Model) editorTitle() string {
	status := m.active.Status()
	title := string(m.active.Kind())
	if editor := domain.GetEditorByKind(m.active.Kind()); editor != nil {
		title = editor.Title
	}
	return title + " " + theme.StatusStyle(status).Render(statusIcon(status))
}

// frame surrounds body with the header and the bottom section. The bottom
// section shows the transient error, falling back to a tip.
func (m *Model) frame(subtitle, body string) string {
	view := renderHeader(m.devMode, subtitle) + "\n" + body + "\n\n"
	view += m.help.View(m.keys) + "\n"

	switch {
	case m.errorManager.HasError():
		view += theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	case m.tip != "":
		view += m.tip
	}
	return view
}
