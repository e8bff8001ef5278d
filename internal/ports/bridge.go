package ports

import (
	"context"
	"encoding/json"
)

// Args are the named arguments of a backend command
type Args map[string]any

// Bridge invokes commands on the out-of-process backend.
// Command names and payload shapes are per-editor contracts.
type Bridge interface {
	Invoke(ctx context.Context, command string, args Args) (json.RawMessage, error)
}

// BridgeCloser is a Bridge holding a connection that must be released
type BridgeCloser interface {
	Bridge
	Close() error
}
