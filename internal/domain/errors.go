package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBridgeInvocation = errors.New("bridge invocation failed")
	ErrTeardown         = errors.New("teardown failed")
)

// Session operation names recorded on SessionError
const (
	OpClose = "close"
	OpOpen  = "open"
)

// SessionError is the single error representation published by sessions.
// It unwraps both to its Kind sentinel and to the underlying cause.
type SessionError struct {
	Err     error
	Kind    error
	Op      string
	Session string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Session, e.Kind, e.Err)
}

func (e *SessionError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NormalizeError converts any failure raised during a session operation into a
// *SessionError. Errors that are already normalized are returned unchanged.
func NormalizeError(session, op string, err error) *SessionError {
	var sessionErr *SessionError
	if errors.As(err, &sessionErr) {
		return sessionErr
	}

	kind := ErrBridgeInvocation
	if op == OpClose {
		kind = ErrTeardown
	}

	return &SessionError{
		Err:     err,
		Kind:    kind,
		Op:      op,
		Session: session,
	}
}
