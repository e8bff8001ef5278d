package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/services"
	"github.com/xray-forge/xrf-shell/internal/session"
)

// Watcher turns session snapshots into Bubble Tea messages.
//
// Notifications are coalesced: at most one is pending at a time. A pending
// notification always renders the latest snapshots, so none is lost.
type Watcher struct {
	closeOnce   sync.Once
	done        chan struct{}
	events      chan tea.Msg
	unsubscribe []func()
}

// NewWatcher subscribes to every session of shell
func NewWatcher(shell *services.Shell) *Watcher {
	w := &Watcher{
		done:   make(chan struct{}),
		events: make(chan tea.Msg, 1),
	}

	watch(w, shell.Archives.Project())
	watch(w, shell.Configs.Report())
	watch(w, shell.Equipment.Sprite())
	watch(w, shell.Equipment.Grid())
	watch(w, shell.Exports.Declarations())
	watch(w, shell.Spawn.File())
	return w
}

func watch[T any](w *Watcher, s *session.Session[T]) {
	w.unsubscribe = append(w.unsubscribe, s.Subscribe(func(domain.Snapshot[T]) {
		w.notify()
	}))
}

func (w *Watcher) notify() {
	select {
	case w.events <- sessionsChangedMsg{}:
	default:
	}
}

// Wait returns a command delivering the next notification
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.events:
			return msg
		case <-w.done:
			return nil
		}
	}
}

// Close removes every subscription and releases a pending Wait
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		for _, unsubscribe := range w.unsubscribe {
			unsubscribe()
		}
		close(w.done)
	})
}
