package bridge

import (
	"context"
	"encoding/json"
	"time"

	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/metrics"
	"github.com/xray-forge/xrf-shell/internal/ports"
)

// Instrumented logs and records metrics for every command sent to the wrapped Bridge
type Instrumented struct {
	next ports.Bridge
}

// NewInstrumented wraps next
func NewInstrumented(next ports.Bridge) *Instrumented {
	return &Instrumented{next: next}
}

// Invoke forwards the command to the wrapped Bridge
func (b *Instrumented) Invoke(ctx context.Context, command string, args ports.Args) (json.RawMessage, error) {
	start := time.Now()
	logging.Logger.Debug("Invoking backend command", "command", command, "args", args)

	result, err := b.next.Invoke(ctx, command, args)

	duration := time.Since(start)
	metrics.RecordBridgeCall(command, duration, err)
	if err != nil {
		logging.Logger.Warn("Backend command failed",
			"command", command,
			"duration", duration,
			"error", err)
		return nil, err
	}

	logging.Logger.Debug("Backend command completed",
		"command", command,
		"duration", duration,
		"bytes", len(result))
	return result, nil
}

// Close closes the wrapped Bridge when it holds a connection
func (b *Instrumented) Close() error {
	if closer, ok := b.next.(ports.BridgeCloser); ok {
		return closer.Close()
	}
	return nil
}
