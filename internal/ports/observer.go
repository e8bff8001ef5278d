package ports

import (
	"time"

	"github.com/xray-forge/xrf-shell/internal/domain"
)

// SessionObserver receives session lifecycle events for instrumentation
type SessionObserver interface {
	// Discarded is called when a superseded completion is dropped
	Discarded(session, op string)
	// Completed is called when an applied operation finishes
	Completed(session, op string, elapsed time.Duration, err error)
	Transition(session string, status domain.SessionStatus)
}
