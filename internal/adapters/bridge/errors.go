package bridge

import (
	"errors"
	"fmt"
)

var (
	ErrBackendClosed  = errors.New("backend connection closed")
	ErrUnknownCommand = errors.New("unknown command")
)

// RemoteError is a failure reported by the backend for one command
type RemoteError struct {
	Code    int64
	Command string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: backend error %d: %s", e.Command, e.Code, e.Message)
}
