package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

const defaultTaskSyncTimeout = 5 * time.Second

// taskService stores tasks and mirrors newly created ones to the external to-do service.
type taskService struct {
	*entityService[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]
	taskRepo    portsrepo.TaskRepositoryFacade
	syncer      portssvc.TaskSyncer
	syncTimeout time.Duration
}

// NewTaskService creates the task service. syncTimeout bounds each sync call.
func NewTaskService(repo portsrepo.TaskRepositoryFacade, syncer portssvc.TaskSyncer, syncTimeout time.Duration) portssvc.TaskSvcFacade {
	if syncTimeout <= 0 {
		syncTimeout = defaultTaskSyncTimeout
	}
	return &taskService{
		entityService: &entityService[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]{
			entity: "Task",
			repo:   repo,
			build:  buildTask,
			apply:  applyTaskUpdate,
		},
		taskRepo:    repo,
		syncer:      syncer,
		syncTimeout: syncTimeout,
	}
}

// Ensure taskService implements portssvc.TaskSvcFacade
var _ portssvc.TaskSvcFacade = (*taskService)(nil)

// Create stores the task and then pushes it to the external service.
// The outcome of the push never changes the result of Create.
func (s *taskService) Create(ctx context.Context, req dto.CreateTaskRequest) (int64, error) {
	task, err := buildTask(req)
	if err != nil {
		return 0, err
	}
	id, err := s.insert(ctx, task)
	if err != nil {
		return 0, err
	}
	s.syncTask(ctx, id, task)
	return id, nil
}

func (s *taskService) syncTask(ctx context.Context, id int64, task *domain.Task) {
	// a fresh context keeps the sync bounded by its own timeout, not the request's
	syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.syncTimeout)
	defer cancel()

	res := s.syncer.Sync(syncCtx, task.Name, task.DueDate)
	switch res.Status {
	case domain.TaskSyncSynced:
		if err := s.taskRepo.SetGoogleTaskID(syncCtx, id, res.RemoteID); err != nil {
			s.LogWarn(ctx, err, "Failed to store google task id", slog.Int64("task_id", id))
			return
		}
		s.LogInfo(ctx, "Task synced to Google Tasks", slog.Int64("task_id", id), slog.String("google_task_id", res.RemoteID))
	case domain.TaskSyncFailed:
		s.LogWarn(ctx, res.Err, "Google Tasks sync failed", slog.Int64("task_id", id))
	default:
		s.LogDebug(ctx, "Google Tasks sync skipped", slog.Int64("task_id", id))
	}
}

func buildTask(req dto.CreateTaskRequest) (*domain.Task, error) {
	if err := requireText("name", req.Name); err != nil {
		return nil, err
	}
	due, err := parseDate("due_date", req.DueDate)
	if err != nil {
		return nil, err
	}
	t := &domain.Task{Name: req.Name, DueDate: due, ContractID: req.ContractID}
	setIfPresent(&t.Completed, req.Completed)
	return t, nil
}

func applyTaskUpdate(t *domain.Task, req dto.UpdateTaskRequest) error {
	if err := setTextIfPresent("name", &t.Name, req.Name); err != nil {
		return err
	}
	if err := setDate("due_date", &t.DueDate, req.DueDate); err != nil {
		return err
	}
	setIfPresent(&t.Completed, req.Completed)
	setNullable(&t.ContractID, req.ContractID)
	return nil
}
