package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/ports"
)

// maxSuggestionDistance bounds how different a registered name may be to be suggested
const maxSuggestionDistance = 4

// HandlerFunc serves one backend command in-process
type HandlerFunc func(ctx context.Context, args ports.Args) (any, error)

// Router is an in-process Bridge dispatching commands to registered handlers
type Router struct {
	handlers map[string]HandlerFunc
	mu       sync.RWMutex
}

// NewRouter creates an empty Router
func NewRouter() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Handle registers fn for command, replacing any previous handler
func (r *Router) Handle(command string, fn HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[command] = fn
}

// Commands returns the registered command names in sorted order
func (r *Router) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the handler registered for command and encodes its result as JSON
func (r *Router) Invoke(ctx context.Context, command string, args ports.Args) (json.RawMessage, error) {
	r.mu.RLock()
	fn, ok := r.handlers[command]
	r.mu.RUnlock()

	if !ok {
		if suggestion := r.suggest(command); suggestion != "" {
			return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownCommand, command, suggestion)
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, command)
	}

	logging.Logger.Debug("Dispatching command in-process", "command", command)
	result, err := fn(ctx, args)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s result: %w", command, err)
	}
	return data, nil
}

// suggest returns the registered command closest to command, or "" if none is close enough
func (r *Router) suggest(command string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, name := range r.Commands() {
		distance := levenshtein.ComputeDistance(command, name)
		if distance < bestDistance {
			best = name
			bestDistance = distance
		}
	}
	return best
}
