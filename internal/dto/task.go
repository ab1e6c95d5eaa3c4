package dto

import "github.com/schergr/interiordesign/internal/core/domain"

// CreateTaskRequest defines the data needed to create a task.
type CreateTaskRequest struct {
	Name       string  `json:"name" binding:"required,notblank"`
	DueDate    *string `json:"due_date"`
	Completed  *bool   `json:"completed"`
	ContractID *int64  `json:"contract_id"`
}

// UpdateTaskRequest defines the fields that may be changed on a task.
type UpdateTaskRequest struct {
	Name       *string          `json:"name" binding:"omitempty,notblank"`
	DueDate    Nullable[string] `json:"due_date" swaggertype:"string"`
	Completed  *bool            `json:"completed"`
	ContractID Nullable[int64]  `json:"contract_id" swaggertype:"integer"`
}

// TaskResponse defines the data returned for a task.
type TaskResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	DueDate      *string `json:"due_date"`
	Completed    bool    `json:"completed"`
	ContractID   *int64  `json:"contract_id"`
	GoogleTaskID *string `json:"google_task_id"`
}

func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		Name:         t.Name,
		DueDate:      FormatDate(t.DueDate),
		Completed:    t.Completed,
		ContractID:   t.ContractID,
		GoogleTaskID: t.GoogleTaskID,
	}
}

func ToListTaskResponse(tasks []domain.Task) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i := range tasks {
		res[i] = ToTaskResponse(&tasks[i])
	}
	return res
}
