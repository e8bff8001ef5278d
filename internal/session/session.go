// Package session tracks the lifecycle of one remotely loaded resource.
//
// A Session moves between Idle, Loading, Ready and Failed and publishes an
// immutable domain.Snapshot on every transition. Every Open, Close, Set and
// Reset takes a new sequence number; an asynchronous completion is applied
// only while its number is still the latest, so a superseded call can never
// overwrite the outcome of a newer one, whatever order the calls finish in.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/ports"
)

// LoadFunc fetches the resource, usually through the command bridge
type LoadFunc[T any] func(ctx context.Context) (T, error)

// RestoreFunc fetches a resource that may be absent; found is false when it is
type RestoreFunc[T any] func(ctx context.Context) (value T, found bool, err error)

// TeardownFunc releases the resource on the backend
type TeardownFunc func(ctx context.Context) error

type subscriber[T any] struct {
	fn func(domain.Snapshot[T])
	id int
}

// Session owns one remotely loaded resource of type T.
//
// Subscribers are called synchronously and in transition order. They must
// not call Open, Close, Set, Update or Reset from inside the callback: the
// transition is still being delivered and the call would deadlock.
type Session[T any] struct {
	deliverMu   sync.Mutex // serializes transitions together with their delivery
	mu          sync.Mutex // guards the fields below
	name        string
	nextID      int
	observer    ports.SessionObserver
	seq         uint64
	snapshot    domain.Snapshot[T]
	subscribers []subscriber[T]
}

// New creates an Idle session. The observer may be nil.
func New[T any](name string, observer ports.SessionObserver) *Session[T] {
	return &Session[T]{
		name:     name,
		observer: observer,
		snapshot: domain.IdleSnapshot[T](),
	}
}

// Name returns the session name used in logs and errors
func (s *Session[T]) Name() string {
	return s.name
}

// Snapshot returns the current snapshot
func (s *Session[T]) Snapshot() domain.Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Subscribe registers fn for every future snapshot and returns a function
// removing the subscription. The returned function is safe to call twice.
//
// fn may read Snapshot. To react with another operation, hand the work off
// without blocking, for example with a non-blocking send to a buffered
// channel drained by another goroutine, and operate from there.
func (s *Session[T]) Subscribe(fn func(domain.Snapshot[T])) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, subscriber[T]{fn: fn, id: id})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// Open loads the resource and returns the snapshot observed when the load
// completed. Failures are never returned: they are published as a Failed
// snapshot carrying a *domain.SessionError. If another operation started
// while load was running, its result is discarded and the current snapshot
// is returned unchanged.
func (s *Session[T]) Open(ctx context.Context, load LoadFunc[T]) domain.Snapshot[T] {
	return s.Restore(ctx, func(ctx context.Context) (T, bool, error) {
		value, err := load(ctx)
		return value, true, err
	})
}

// Restore is Open for resources that may not exist on the backend, such as
// a resource opened by a previous run. When load reports nothing was found
// the session settles Idle instead of Ready.
func (s *Session[T]) Restore(ctx context.Context, load RestoreFunc[T]) domain.Snapshot[T] {
	seq := s.begin(func(current domain.Snapshot[T]) domain.Snapshot[T] {
		return current.AsLoading()
	})

	logging.Logger.Debug("Session opening", "session", s.name, "seq", seq)
	started := time.Now()

	value, found, err := safeLoad(ctx, load)
	if err != nil {
		normalized := domain.NormalizeError(s.name, domain.OpOpen, err)
		return s.complete(seq, domain.OpOpen, started, normalized, func(current domain.Snapshot[T]) domain.Snapshot[T] {
			return current.AsFailed(normalized)
		})
	}

	if !found {
		return s.complete(seq, domain.OpOpen, started, nil, func(domain.Snapshot[T]) domain.Snapshot[T] {
			return domain.IdleSnapshot[T]()
		})
	}

	return s.complete(seq, domain.OpOpen, started, nil, func(current domain.Snapshot[T]) domain.Snapshot[T] {
		return current.AsReady(value)
	})
}

// Close tears the resource down. The current value is kept while teardown
// runs; on success the session returns to Idle with the value cleared, on
// failure it becomes Failed with the value intact so close can be retried.
func (s *Session[T]) Close(ctx context.Context, teardown TeardownFunc) domain.Snapshot[T] {
	seq := s.begin(func(current domain.Snapshot[T]) domain.Snapshot[T] {
		return current.AsLoading()
	})

	logging.Logger.Debug("Session closing", "session", s.name, "seq", seq)
	started := time.Now()

	if err := safeTeardown(ctx, teardown); err != nil {
		normalized := domain.NormalizeError(s.name, domain.OpClose, err)
		return s.complete(seq, domain.OpClose, started, normalized, func(current domain.Snapshot[T]) domain.Snapshot[T] {
			return current.AsFailed(normalized)
		})
	}

	return s.complete(seq, domain.OpClose, started, nil, func(domain.Snapshot[T]) domain.Snapshot[T] {
		return domain.IdleSnapshot[T]()
	})
}

// Set publishes value as Ready, superseding any operation in flight
func (s *Session[T]) Set(value T) domain.Snapshot[T] {
	return s.Update(func(T) T { return value })
}

// Update publishes fn(current value) as Ready, superseding any operation in
// flight. fn receives the zero value when the session holds none.
func (s *Session[T]) Update(fn func(current T) T) domain.Snapshot[T] {
	var next domain.Snapshot[T]
	s.begin(func(current domain.Snapshot[T]) domain.Snapshot[T] {
		next = current.AsReady(fn(current.Value))
		return next
	})
	return next
}

// Reset returns the session to Idle with no value, superseding any operation in flight
func (s *Session[T]) Reset() {
	s.begin(func(domain.Snapshot[T]) domain.Snapshot[T] {
		return domain.IdleSnapshot[T]()
	})
}

// begin takes a new sequence number and publishes transform(current)
func (s *Session[T]) begin(transform func(domain.Snapshot[T]) domain.Snapshot[T]) uint64 {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	s.seq++
	seq := s.seq
	next := transform(s.snapshot)
	s.snapshot = next
	subscribers := s.copySubscribers()
	s.mu.Unlock()

	s.deliver(next, subscribers)
	return seq
}

// complete applies transform if seq is still the latest operation
func (s *Session[T]) complete(
	seq uint64,
	op string,
	started time.Time,
	err error,
	transform func(domain.Snapshot[T]) domain.Snapshot[T],
) domain.Snapshot[T] {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	if seq != s.seq {
		current := s.snapshot
		latest := s.seq
		s.mu.Unlock()

		logging.Logger.Debug("Discarding superseded completion",
			"session", s.name,
			"op", op,
			"seq", seq,
			"latest", latest,
			"error", err)
		if s.observer != nil {
			s.observer.Discarded(s.name, op)
		}
		return current
	}

	next := transform(s.snapshot)
	s.snapshot = next
	subscribers := s.copySubscribers()
	s.mu.Unlock()

	elapsed := time.Since(started)
	if err != nil {
		logging.Logger.Warn("Session operation failed",
			"session", s.name,
			"op", op,
			"duration", elapsed,
			"error", err)
	} else {
		logging.Logger.Info("Session operation completed",
			"session", s.name,
			"op", op,
			"duration", elapsed)
	}
	if s.observer != nil {
		s.observer.Completed(s.name, op, elapsed, err)
	}

	s.deliver(next, subscribers)
	return next
}

// copySubscribers must be called with mu held
func (s *Session[T]) copySubscribers() []func(domain.Snapshot[T]) {
	fns := make([]func(domain.Snapshot[T]), len(s.subscribers))
	for i, sub := range s.subscribers {
		fns[i] = sub.fn
	}
	return fns
}

// deliver must be called with deliverMu held
func (s *Session[T]) deliver(snapshot domain.Snapshot[T], subscribers []func(domain.Snapshot[T])) {
	if s.observer != nil {
		s.observer.Transition(s.name, snapshot.Status)
	}
	for _, fn := range subscribers {
		fn(snapshot)
	}
}

func safeLoad[T any](ctx context.Context, load RestoreFunc[T]) (value T, found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during load: %v", r)
		}
	}()
	return load(ctx)
}

func safeTeardown(ctx context.Context, teardown TeardownFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during teardown: %v", r)
		}
	}()
	if teardown == nil {
		return nil
	}
	return teardown(ctx)
}
