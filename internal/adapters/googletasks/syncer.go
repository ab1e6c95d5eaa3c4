// Package googletasks mirrors tasks to a Google Tasks list through a service account.
package googletasks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/metrics"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// DefaultTaskList is the list of the service account that receives new tasks.
const DefaultTaskList = "@default"

// Syncer inserts tasks into a Google Tasks list.
type Syncer struct {
	svc      *tasks.Service
	taskList string
}

// NewSyncer builds a Syncer from client options such as credentials or a custom endpoint.
func NewSyncer(ctx context.Context, opts ...option.ClientOption) (*Syncer, error) {
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google tasks client: %w", err)
	}
	return &Syncer{svc: svc, taskList: DefaultTaskList}, nil
}

// NewFromServiceAccountFile returns a Syncer authenticated with the service
// account key at path. An empty path or a missing file yields a syncer that
// skips every task.
func NewFromServiceAccountFile(ctx context.Context, path string, logger *slog.Logger) (portssvc.TaskSyncer, error) {
	if path == "" {
		logger.Info("Google Tasks sync disabled: no service account file configured")
		return NoopSyncer{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Google Tasks sync disabled: service account file not found", slog.String("path", path))
			return NoopSyncer{}, nil
		}
		return nil, fmt.Errorf("failed to read service account file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, tasks.TasksScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account file: %w", err)
	}

	s, err := NewSyncer(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, err
	}
	logger.Info("Google Tasks sync enabled", slog.String("task_list", s.taskList))
	return s, nil
}

// Sync inserts the task and reports the id Google assigned to it.
func (s *Syncer) Sync(ctx context.Context, name string, due *time.Time) domain.TaskSyncResult {
	t := &tasks.Task{Title: name}
	if due != nil {
		// Google Tasks keeps only the date part of due
		t.Due = due.Format("2006-01-02") + "T00:00:00Z"
	}

	res, err := s.svc.Tasks.Insert(s.taskList, t).Context(ctx).Do()
	if err != nil {
		return domain.FailedTask(err)
	}
	return domain.SyncedTask(res.Id)
}

// NoopSyncer is used when no Google account is configured.
type NoopSyncer struct{}

func (NoopSyncer) Sync(context.Context, string, *time.Time) domain.TaskSyncResult {
	return domain.SkippedTask()
}

type instrumentedSyncer struct {
	next portssvc.TaskSyncer
	m    *metrics.Metrics
}

// WithMetrics counts every sync outcome on m.
func WithMetrics(next portssvc.TaskSyncer, m *metrics.Metrics) portssvc.TaskSyncer {
	if m == nil {
		return next
	}
	return &instrumentedSyncer{next: next, m: m}
}

func (s *instrumentedSyncer) Sync(ctx context.Context, name string, due *time.Time) domain.TaskSyncResult {
	res := s.next.Sync(ctx, name, due)
	s.m.TaskSyncTotal.WithLabelValues(string(res.Status)).Inc()
	return res
}

var (
	_ portssvc.TaskSyncer = (*Syncer)(nil)
	_ portssvc.TaskSyncer = NoopSyncer{}
	_ portssvc.TaskSyncer = (*instrumentedSyncer)(nil)
)
