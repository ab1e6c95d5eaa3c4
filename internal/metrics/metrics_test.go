package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/schergr/interiordesign/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAndHandler(t *testing.T) {
	m := metrics.New("interiordesign_test")

	m.HTTPRequestsTotal.WithLabelValues("GET", "/vendors", "200").Inc()
	m.TaskSyncTotal.WithLabelValues("skipped").Inc()
	m.TaskSyncTotal.WithLabelValues("skipped").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/vendors", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TaskSyncTotal.WithLabelValues("skipped")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "interiordesign_test_http_requests_total")
	assert.Contains(t, rec.Body.String(), "interiordesign_test_task_sync_total")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	// two instances with the same namespace must not collide
	assert.NotPanics(t, func() {
		metrics.New("dup")
		metrics.New("dup")
	})
}
