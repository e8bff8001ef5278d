package domain

// SessionStatus represents the lifecycle state of a remotely loaded resource
type SessionStatus int

const (
	StatusIdle SessionStatus = iota
	StatusLoading
	StatusReady
	StatusFailed
)

// String returns the lowercase status name used in logs and metrics labels
func (s SessionStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of a session at one point of its lifecycle.
// Value holds the last successfully loaded artifact and survives Loading and
// Failed transitions until it is replaced or explicitly cleared.
type Snapshot[T any] struct {
	Err      error
	HasValue bool
	Status   SessionStatus
	Value    T
}

// IdleSnapshot returns the initial snapshot of a freshly mounted session
func IdleSnapshot[T any]() Snapshot[T] {
	return Snapshot[T]{Status: StatusIdle}
}

func (s Snapshot[T]) IsIdle() bool    { return s.Status == StatusIdle }
func (s Snapshot[T]) IsLoading() bool { return s.Status == StatusLoading }
func (s Snapshot[T]) IsReady() bool   { return s.Status == StatusReady }
func (s Snapshot[T]) IsFailed() bool  { return s.Status == StatusFailed }

// AsLoading returns a loading snapshot that keeps the current value
func (s Snapshot[T]) AsLoading() Snapshot[T] {
	return Snapshot[T]{
		HasValue: s.HasValue,
		Status:   StatusLoading,
		Value:    s.Value,
	}
}

// AsFailed returns a failed snapshot that keeps the current value
func (s Snapshot[T]) AsFailed(err error) Snapshot[T] {
	return Snapshot[T]{
		Err:      err,
		HasValue: s.HasValue,
		Status:   StatusFailed,
		Value:    s.Value,
	}
}

// AsReady returns a ready snapshot holding value, with any error cleared
func (s Snapshot[T]) AsReady(value T) Snapshot[T] {
	return Snapshot[T]{
		HasValue: true,
		Status:   StatusReady,
		Value:    value,
	}
}
