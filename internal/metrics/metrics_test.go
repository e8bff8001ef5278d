package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/ports"
)

var _ ports.SessionObserver = (*SessionObserver)(nil)

func scrape(t *testing.T) string {
	t.Helper()
	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.Body.String()
}

func TestSessionObserver_Transition(t *testing.T) {
	observer := NewSessionObserver()

	observer.Transition("test-transition", domain.StatusLoading)
	observer.Transition("test-transition", domain.StatusReady)

	body := scrape(t)
	assert.Contains(t, body, `xrf_session_transitions_total{session="test-transition",status="loading"} 1`)
	assert.Contains(t, body, `xrf_session_status{session="test-transition",status="ready"} 1`)
	assert.Contains(t, body, `xrf_session_status{session="test-transition",status="loading"} 0`)
}

func TestSessionObserver_CompletedAndDiscarded(t *testing.T) {
	observer := NewSessionObserver()

	observer.Completed("test-completed", domain.OpOpen, time.Millisecond, nil)
	observer.Completed("test-completed", domain.OpOpen, time.Millisecond, errors.New("boom"))
	observer.Discarded("test-completed", domain.OpOpen)
	observer.Discarded("test-completed", domain.OpOpen)

	body := scrape(t)
	assert.Contains(t, body, `xrf_session_operations_total{op="open",result="success",session="test-completed"} 1`)
	assert.Contains(t, body, `xrf_session_operations_total{op="open",result="error",session="test-completed"} 1`)
	assert.Contains(t, body, `xrf_session_discarded_total{op="open",session="test-completed"} 2`)
}

func TestRecordBridgeCall(t *testing.T) {
	RecordBridgeCall("test_command", 10*time.Millisecond, nil)
	RecordBridgeCall("test_command", 10*time.Millisecond, errors.New("boom"))

	body := scrape(t)
	assert.Contains(t, body, `xrf_bridge_calls_total{command="test_command",result="success"} 1`)
	assert.Contains(t, body, `xrf_bridge_calls_total{command="test_command",result="error"} 1`)
	assert.Contains(t, body, `xrf_bridge_call_duration_seconds_count{command="test_command"} 2`)
}
