package server

import (
	"fmt"
	"time"

	"github.com/charmbracelet/ssh"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/ui"
)

// sessionModel wraps ui.Model to log the end of an SSH session
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// teaHandler creates a Bubble Tea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := uuid.NewString()

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := ui.NewModelFromConfig(ui.ModelConfig{
		Context:         sess.Context(),
		DevMode:         false, // SSH mode never uses dev mode
		ErrorClearDelay: s.opts.ErrorClearDelay,
		Keys:            s.opts.Keys,
		Shell:           s.shell,
	})

	// The program is killed without a QuitMsg when the client disconnects
	go func() {
		<-sess.Context().Done()
		model.Close()
	}()

	return &sessionModel{
		Model:     model,
		sessionID: sessionID,
		startTime: time.Now(),
	}, []tea.ProgramOption{tea.WithAltScreen()}
}
