package domain

import "time"

// Task is a to-do item, optionally tied to a contract and mirrored to Google Tasks.
type Task struct {
	ID           int64
	Name         string
	DueDate      *time.Time
	Completed    bool
	ContractID   *int64
	GoogleTaskID *string
}

// TaskSyncStatus is the outcome of pushing a task to the external to-do service.
type TaskSyncStatus string

const (
	TaskSyncSynced  TaskSyncStatus = "synced"
	TaskSyncSkipped TaskSyncStatus = "skipped"
	TaskSyncFailed  TaskSyncStatus = "failed"
)

// TaskSyncResult reports what happened when a task was pushed to the external service.
type TaskSyncResult struct {
	Status   TaskSyncStatus
	RemoteID string
	Err      error
}

// SyncedTask builds a successful TaskSyncResult.
func SyncedTask(remoteID string) TaskSyncResult {
	return TaskSyncResult{Status: TaskSyncSynced, RemoteID: remoteID}
}

// SkippedTask builds a TaskSyncResult for an unconfigured integration.
func SkippedTask() TaskSyncResult {
	return TaskSyncResult{Status: TaskSyncSkipped}
}

// FailedTask builds a recoverable-failure TaskSyncResult.
func FailedTask(err error) TaskSyncResult {
	return TaskSyncResult{Status: TaskSyncFailed, Err: err}
}
