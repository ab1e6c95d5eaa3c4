package googletasks_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/schergr/interiordesign/internal/adapters/googletasks"
	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/schergr/interiordesign/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSyncer(t *testing.T, handler http.HandlerFunc) *googletasks.Syncer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s, err := googletasks.NewSyncer(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return s
}

func TestSyncer_InsertsTaskWithDueDate(t *testing.T) {
	var got map[string]any
	s := newTestSyncer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/tasks"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"remote-1","title":"Order fabric"}`))
	})

	due := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	res := s.Sync(context.Background(), "Order fabric", &due)

	assert.Equal(t, domain.TaskSyncSynced, res.Status)
	assert.Equal(t, "remote-1", res.RemoteID)
	assert.Equal(t, "Order fabric", got["title"])
	assert.Equal(t, "2026-03-01T00:00:00Z", got["due"])
}

func TestSyncer_OmitsDueWhenUnset(t *testing.T) {
	var got map[string]any
	s := newTestSyncer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"remote-2"}`))
	})

	res := s.Sync(context.Background(), "Call client", nil)

	assert.Equal(t, domain.TaskSyncSynced, res.Status)
	_, hasDue := got["due"]
	assert.False(t, hasDue)
}

func TestSyncer_RemoteErrorIsFailure(t *testing.T) {
	s := newTestSyncer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"bad task"}}`))
	})

	res := s.Sync(context.Background(), "Broken", nil)

	assert.Equal(t, domain.TaskSyncFailed, res.Status)
	assert.Error(t, res.Err)
	assert.Empty(t, res.RemoteID)
}

func TestNewFromServiceAccountFile_Unconfigured(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.json")} {
		s, err := googletasks.NewFromServiceAccountFile(context.Background(), path, discardLogger())
		require.NoError(t, err)
		assert.Equal(t, domain.TaskSyncSkipped, s.Sync(context.Background(), "x", nil).Status)
	}
}

func TestWithMetrics_CountsOutcome(t *testing.T) {
	m := metrics.New("gt")
	s := googletasks.WithMetrics(googletasks.NoopSyncer{}, m)

	s.Sync(context.Background(), "a", nil)
	s.Sync(context.Background(), "b", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TaskSyncTotal.WithLabelValues("skipped")))
}
