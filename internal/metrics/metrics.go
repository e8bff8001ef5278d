// Package metrics provides Prometheus metrics for sessions and the command bridge.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
)

var (
	// Session metrics
	sessionTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xrf_session_transitions_total",
			Help: "Total number of published session snapshots",
		},
		[]string{"session", "status"},
	)

	sessionOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xrf_session_operations_total",
			Help: "Total number of applied session operations",
		},
		[]string{"session", "op", "result"},
	)

	sessionOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xrf_session_operation_duration_seconds",
			Help:    "Duration of applied session operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"session", "op"},
	)

	sessionDiscardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xrf_session_discarded_total",
			Help: "Total number of superseded completions that were discarded",
		},
		[]string{"session", "op"},
	)

	sessionStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "xrf_session_status",
			Help: "Current session status (1 for the active status)",
		},
		[]string{"session", "status"},
	)

	// Bridge metrics
	bridgeCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xrf_bridge_calls_total",
			Help: "Total number of backend commands invoked",
		},
		[]string{"command", "result"},
	)

	bridgeCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xrf_bridge_call_duration_seconds",
			Help:    "Backend command duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	// Blob metrics
	blobBytesFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "xrf_blob_bytes_fetched_total",
			Help: "Total bytes fetched from the blob endpoint",
		},
	)
)

var statuses = []domain.SessionStatus{
	domain.StatusIdle,
	domain.StatusLoading,
	domain.StatusReady,
	domain.StatusFailed,
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Logger.Warn("Metrics server shutdown failed", "error", err)
		}
	}()

	logging.Logger.Info("Metrics server listening", "addr", addr)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// RecordBridgeCall records one backend command invocation.
func RecordBridgeCall(command string, duration time.Duration, err error) {
	bridgeCallsTotal.WithLabelValues(command, result(err)).Inc()
	bridgeCallDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordBlobFetch records the size of a fetched blob.
func RecordBlobFetch(bytes int) {
	blobBytesFetched.Add(float64(bytes))
}

// SessionObserver reports session lifecycle events to Prometheus.
type SessionObserver struct{}

// NewSessionObserver creates a SessionObserver.
func NewSessionObserver() *SessionObserver {
	return &SessionObserver{}
}

// Transition records a published snapshot.
func (o *SessionObserver) Transition(session string, status domain.SessionStatus) {
	sessionTransitionsTotal.WithLabelValues(session, status.String()).Inc()
	for _, s := range statuses {
		value := 0.0
		if s == status {
			value = 1
		}
		sessionStatus.WithLabelValues(session, s.String()).Set(value)
	}
}

// Completed records an applied operation.
func (o *SessionObserver) Completed(session, op string, elapsed time.Duration, err error) {
	sessionOperationsTotal.WithLabelValues(session, op, result(err)).Inc()
	sessionOperationDuration.WithLabelValues(session, op).Observe(elapsed.Seconds())
}

// Discarded records a superseded completion.
func (o *SessionObserver) Discarded(session, op string) {
	sessionDiscardedTotal.WithLabelValues(session, op).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
