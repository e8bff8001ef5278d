package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xray-forge/xrf-shell/internal/domain"
	portsmocks "github.com/xray-forge/xrf-shell/internal/ports/mocks"
)

// gate is a controllable backend call: it signals when it starts and
// completes only when released.
type gate struct {
	err     error
	proceed chan struct{}
	started chan struct{}
	value   string
}

func newGate(value string, err error) *gate {
	return &gate{
		err:     err,
		proceed: make(chan struct{}),
		started: make(chan struct{}),
		value:   value,
	}
}

func (g *gate) load(ctx context.Context) (string, error) {
	close(g.started)
	<-g.proceed
	return g.value, g.err
}

func (g *gate) teardown(ctx context.Context) error {
	close(g.started)
	<-g.proceed
	return g.err
}

// recorder collects every published snapshot
type recorder struct {
	mu        sync.Mutex
	snapshots []domain.Snapshot[string]
}

func (r *recorder) record(s domain.Snapshot[string]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, s)
}

func (r *recorder) statuses() []domain.SessionStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	statuses := make([]domain.SessionStatus, len(r.snapshots))
	for i, s := range r.snapshots {
		statuses[i] = s.Status
	}
	return statuses
}

func (r *recorder) all() []domain.Snapshot[string] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Snapshot[string](nil), r.snapshots...)
}

// startOpen runs Open in a goroutine once g has started.
// The returned channel yields the snapshot Open returned.
func startOpen(s *Session[string], g *gate) <-chan domain.Snapshot[string] {
	done := make(chan domain.Snapshot[string], 1)
	go func() {
		done <- s.Open(context.Background(), g.load)
	}()
	<-g.started
	return done
}

func startClose(s *Session[string], g *gate) <-chan domain.Snapshot[string] {
	done := make(chan domain.Snapshot[string], 1)
	go func() {
		done <- s.Close(context.Background(), g.teardown)
	}()
	<-g.started
	return done
}

func readyValue(value string) LoadFunc[string] {
	return func(context.Context) (string, error) { return value, nil }
}

func failing(err error) LoadFunc[string] {
	return func(context.Context) (string, error) { return "", err }
}

func TestNew_StartsIdle(t *testing.T) {
	s := New[string]("archives", nil)

	snapshot := s.Snapshot()
	assert.True(t, snapshot.IsIdle())
	assert.False(t, snapshot.HasValue)
	assert.NoError(t, snapshot.Err)
	assert.Equal(t, "archives", s.Name())
}

func TestOpen_Success(t *testing.T) {
	s := New[string]("archives", nil)
	rec := &recorder{}
	s.Subscribe(rec.record)

	snapshot := s.Open(context.Background(), readyValue("p1"))

	assert.True(t, snapshot.IsReady())
	assert.Equal(t, "p1", snapshot.Value)
	assert.True(t, snapshot.HasValue)
	assert.Equal(t, snapshot, s.Snapshot())
	assert.Equal(t, []domain.SessionStatus{domain.StatusLoading, domain.StatusReady}, rec.statuses())
}

func TestOpen_LoadingKeepsPreviousValue(t *testing.T) {
	s := New[string]("archives", nil)
	s.Open(context.Background(), readyValue("p1"))

	g := newGate("p2", nil)
	done := startOpen(s, g)

	loading := s.Snapshot()
	assert.True(t, loading.IsLoading())
	assert.Equal(t, "p1", loading.Value)
	assert.NoError(t, loading.Err)

	close(g.proceed)
	assert.Equal(t, "p2", (<-done).Value)
}

func TestOpen_FailureKeepsPreviousValue(t *testing.T) {
	s := New[string]("archives", nil)
	s.Open(context.Background(), readyValue("p1"))

	cause := errors.New("file not found")
	snapshot := s.Open(context.Background(), failing(cause))

	require.True(t, snapshot.IsFailed())
	assert.Equal(t, "p1", snapshot.Value)
	assert.True(t, snapshot.HasValue)
	assert.ErrorIs(t, snapshot.Err, domain.ErrBridgeInvocation)
	assert.ErrorIs(t, snapshot.Err, cause)

	var sessionErr *domain.SessionError
	require.ErrorAs(t, snapshot.Err, &sessionErr)
	assert.Equal(t, "archives", sessionErr.Session)
	assert.Equal(t, domain.OpOpen, sessionErr.Op)
}

func TestOpen_RetryAfterFailureClearsError(t *testing.T) {
	s := New[string]("archives", nil)
	s.Open(context.Background(), failing(errors.New("boom")))

	g := newGate("p1", nil)
	done := startOpen(s, g)
	assert.NoError(t, s.Snapshot().Err)

	close(g.proceed)
	snapshot := <-done
	assert.True(t, snapshot.IsReady())
	assert.NoError(t, snapshot.Err)
}

func TestOpen_PanicBecomesFailure(t *testing.T) {
	s := New[string]("archives", nil)

	snapshot := s.Open(context.Background(), func(context.Context) (string, error) {
		panic("boom")
	})

	require.True(t, snapshot.IsFailed())
	assert.ErrorIs(t, snapshot.Err, domain.ErrBridgeInvocation)
	assert.Contains(t, snapshot.Err.Error(), "panic during load: boom")
}

func TestOpen_SupersededSuccessIsDiscarded(t *testing.T) {
	observer := portsmocks.NewMockSessionObserver(t)
	observer.EXPECT().Transition("archives", mock.Anything).Maybe()
	observer.EXPECT().Completed("archives", domain.OpOpen, mock.Anything, nil).Once()
	observer.EXPECT().Discarded("archives", domain.OpOpen).Once()

	s := New[string]("archives", observer)
	rec := &recorder{}
	s.Subscribe(rec.record)

	p1 := newGate("p1", nil)
	p2 := newGate("p2", nil)
	firstDone := startOpen(s, p1)
	secondDone := startOpen(s, p2)

	// p2 resolves first, p1 afterwards
	close(p2.proceed)
	second := <-secondDone
	close(p1.proceed)
	first := <-firstDone

	assert.True(t, second.IsReady())
	assert.Equal(t, "p2", second.Value)
	assert.Equal(t, second, first, "superseded open returns the current snapshot")
	assert.Equal(t, "p2", s.Snapshot().Value)
	assert.Equal(t, []domain.SessionStatus{
		domain.StatusLoading,
		domain.StatusLoading,
		domain.StatusReady,
	}, rec.statuses())
}

func TestOpen_SupersededFailureIsDiscarded(t *testing.T) {
	s := New[string]("archives", nil)

	p1 := newGate("", errors.New("late failure"))
	p2 := newGate("p2", nil)
	firstDone := startOpen(s, p1)
	secondDone := startOpen(s, p2)

	close(p2.proceed)
	<-secondDone
	close(p1.proceed)
	<-firstDone

	snapshot := s.Snapshot()
	assert.True(t, snapshot.IsReady())
	assert.Equal(t, "p2", snapshot.Value)
	assert.NoError(t, snapshot.Err)
}

func TestOpen_EarlierCompletionOfSupersededCallIsDiscarded(t *testing.T) {
	s := New[string]("archives", nil)

	p1 := newGate("p1", nil)
	p2 := newGate("p2", nil)
	firstDone := startOpen(s, p1)
	secondDone := startOpen(s, p2)

	close(p1.proceed)
	first := <-firstDone
	assert.True(t, first.IsLoading(), "p2 is still in flight")
	assert.NotEqual(t, "p1", s.Snapshot().Value)

	close(p2.proceed)
	assert.Equal(t, "p2", (<-secondDone).Value)
}

func TestOpen_LastStartedWinsRegardlessOfCompletionOrder(t *testing.T) {
	s := New[string]("archives", nil)
	rec := &recorder{}
	s.Subscribe(rec.record)

	const calls = 5
	gates := make([]*gate, calls)
	done := make([]<-chan domain.Snapshot[string], calls)
	for i := range gates {
		gates[i] = newGate(fmt.Sprintf("p%d", i), nil)
		done[i] = startOpen(s, gates[i])
	}

	for i := calls - 1; i >= 0; i-- {
		close(gates[i].proceed)
		<-done[i]
	}

	assert.Equal(t, "p4", s.Snapshot().Value)
	for _, snapshot := range rec.all() {
		flags := []bool{snapshot.IsIdle(), snapshot.IsLoading(), snapshot.IsReady(), snapshot.IsFailed()}
		count := 0
		for _, flag := range flags {
			if flag {
				count++
			}
		}
		assert.Equal(t, 1, count, "exactly one status flag must hold")
	}
}

func TestClose_SuccessReturnsToIdle(t *testing.T) {
	observer := portsmocks.NewMockSessionObserver(t)
	observer.EXPECT().Transition("equipment", mock.Anything).Maybe()
	observer.EXPECT().Completed("equipment", domain.OpOpen, mock.Anything, nil).Once()
	observer.EXPECT().Completed("equipment", domain.OpClose, mock.Anything, nil).Once()

	s := New[string]("equipment", observer)
	s.Open(context.Background(), readyValue("sprite"))

	g := newGate("", nil)
	done := startClose(s, g)

	closing := s.Snapshot()
	assert.True(t, closing.IsLoading())
	assert.Equal(t, "sprite", closing.Value, "value is kept while tearing down")

	close(g.proceed)
	snapshot := <-done
	assert.True(t, snapshot.IsIdle())
	assert.False(t, snapshot.HasValue)
	assert.Empty(t, snapshot.Value)
	assert.NoError(t, snapshot.Err)
}

func TestClose_FailureKeepsValue(t *testing.T) {
	s := New[string]("equipment", nil)
	s.Open(context.Background(), readyValue("sprite"))

	cause := errors.New("handle busy")
	snapshot := s.Close(context.Background(), func(context.Context) error { return cause })

	require.True(t, snapshot.IsFailed())
	assert.Equal(t, "sprite", snapshot.Value)
	assert.ErrorIs(t, snapshot.Err, domain.ErrTeardown)
	assert.ErrorIs(t, snapshot.Err, cause)
}

func TestClose_FromIdleAndFailed(t *testing.T) {
	s := New[string]("spawn", nil)

	assert.True(t, s.Close(context.Background(), nil).IsIdle())

	s.Open(context.Background(), failing(errors.New("boom")))
	require.True(t, s.Snapshot().IsFailed())

	snapshot := s.Close(context.Background(), func(context.Context) error { return nil })
	assert.True(t, snapshot.IsIdle())
	assert.NoError(t, snapshot.Err)
}

func TestClose_SupersededByOpen(t *testing.T) {
	s := New[string]("archives", nil)
	s.Open(context.Background(), readyValue("p1"))

	teardown := newGate("", nil)
	closeDone := startClose(s, teardown)

	s.Open(context.Background(), readyValue("p2"))

	close(teardown.proceed)
	<-closeDone

	snapshot := s.Snapshot()
	assert.True(t, snapshot.IsReady())
	assert.Equal(t, "p2", snapshot.Value)
}

func TestOpen_SupersededByClose(t *testing.T) {
	s := New[string]("archives", nil)

	g := newGate("p1", nil)
	openDone := startOpen(s, g)

	snapshot := s.Close(context.Background(), func(context.Context) error { return nil })
	assert.True(t, snapshot.IsIdle())

	close(g.proceed)
	<-openDone
	assert.True(t, s.Snapshot().IsIdle())
	assert.False(t, s.Snapshot().HasValue)
}

func TestSet_SupersedesInFlightOpen(t *testing.T) {
	s := New[string]("equipment", nil)

	g := newGate("loaded", nil)
	done := startOpen(s, g)

	snapshot := s.Set("manual")
	assert.True(t, snapshot.IsReady())

	close(g.proceed)
	<-done
	assert.Equal(t, "manual", s.Snapshot().Value)
}

func TestUpdate_ReceivesCurrentValue(t *testing.T) {
	s := New[string]("equipment", nil)

	snapshot := s.Update(func(current string) string { return current + "a" })
	assert.Equal(t, "a", snapshot.Value)

	snapshot = s.Update(func(current string) string { return current + "b" })
	assert.Equal(t, "ab", snapshot.Value)
	assert.True(t, snapshot.IsReady())
}

func TestReset(t *testing.T) {
	s := New[string]("archives", nil)
	s.Open(context.Background(), readyValue("p1"))

	s.Reset()

	snapshot := s.Snapshot()
	assert.True(t, snapshot.IsIdle())
	assert.False(t, snapshot.HasValue)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := New[string]("archives", nil)
	first := &recorder{}
	second := &recorder{}
	unsubscribeFirst := s.Subscribe(first.record)
	s.Subscribe(second.record)

	s.Set("a")
	unsubscribeFirst()
	unsubscribeFirst()
	s.Set("b")

	assert.Len(t, first.all(), 1)
	assert.Len(t, second.all(), 2)
}

func TestSubscribe_CanReadSnapshotFromCallback(t *testing.T) {
	s := New[string]("archives", nil)
	var seen []string
	s.Subscribe(func(domain.Snapshot[string]) {
		seen = append(seen, s.Snapshot().Status.String())
	})

	s.Open(context.Background(), readyValue("p1"))

	assert.Equal(t, []string{"loading", "ready"}, seen)
}

func TestSubscribe_HandOffReactsWithoutDeadlock(t *testing.T) {
	s := New[string]("archives", nil)
	failed := make(chan struct{}, 1)
	s.Subscribe(func(snapshot domain.Snapshot[string]) {
		if snapshot.IsFailed() {
			select {
			case failed <- struct{}{}:
			default:
			}
		}
	})

	closed := make(chan domain.Snapshot[string], 1)
	go func() {
		<-failed
		closed <- s.Close(context.Background(), nil)
	}()

	opened := s.Open(context.Background(), failing(errors.New("backend down")))
	require.True(t, opened.IsFailed())

	select {
	case snapshot := <-closed:
		assert.True(t, snapshot.IsIdle())
	case <-time.After(2 * time.Second):
		t.Fatal("close issued from the subscriber hand-off never completed")
	}
	assert.True(t, s.Snapshot().IsIdle())
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name       string
		load       RestoreFunc[string]
		wantStatus domain.SessionStatus
		wantValue  string
	}{
		{
			name: "found resource becomes ready",
			load: func(context.Context) (string, bool, error) {
				return "restored", true, nil
			},
			wantStatus: domain.StatusReady,
			wantValue:  "restored",
		},
		{
			name: "missing resource settles idle",
			load: func(context.Context) (string, bool, error) {
				return "", false, nil
			},
			wantStatus: domain.StatusIdle,
		},
		{
			name: "failure is published",
			load: func(context.Context) (string, bool, error) {
				return "", false, errors.New("backend down")
			},
			wantStatus: domain.StatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[string]("spawn", nil)

			snapshot := s.Restore(context.Background(), tt.load)

			assert.Equal(t, tt.wantStatus, snapshot.Status)
			assert.Equal(t, tt.wantValue, snapshot.Value)
		})
	}
}
