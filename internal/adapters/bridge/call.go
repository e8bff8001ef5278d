package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/xray-forge/xrf-shell/internal/ports"
)

// Call invokes command and decodes the result into T
func Call[T any](ctx context.Context, b ports.Bridge, command string, args ports.Args) (T, error) {
	var result T
	data, err := b.Invoke(ctx, command, args)
	if err != nil {
		return result, err
	}
	if IsNull(data) {
		return result, nil
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("failed to decode %s result: %w", command, err)
	}
	return result, nil
}

// CallOptional is Call for commands that may return null.
// A nil pointer means the backend has nothing to return.
func CallOptional[T any](ctx context.Context, b ports.Bridge, command string, args ports.Args) (*T, error) {
	data, err := b.Invoke(ctx, command, args)
	if err != nil {
		return nil, err
	}
	if IsNull(data) {
		return nil, nil
	}
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", command, err)
	}
	return &result, nil
}

// Exec invokes command ignoring its result
func Exec(ctx context.Context, b ports.Bridge, command string, args ports.Args) error {
	_, err := b.Invoke(ctx, command, args)
	return err
}

// IsNull reports whether data is empty or the JSON null literal
func IsNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
