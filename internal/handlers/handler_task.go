package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// taskHandler handles HTTP requests related to tasks.
type taskHandler struct {
	crud *crudHandler[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest, dto.TaskResponse]
}

// registerTaskRoutes registers routes related to tasks.
func registerTaskRoutes(rg *gin.RouterGroup, svc portssvc.TaskSvcFacade) {
	h := &taskHandler{
		crud: newCRUDHandler[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest, dto.TaskResponse](
			"Task", svc, dto.ToTaskResponse, dto.ToListTaskResponse,
		),
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/:id", h.getTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

// createTask godoc
// @Summary Create a task
// @Description Creates a task and mirrors it to Google Tasks when an account is configured. A failed sync does not fail the request.
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create task"
// @Security BasicAuth
// @Security BearerAuth
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	h.crud.create(c)
}

// listTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce  json
// @Success 200 {array} dto.TaskResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list task"
// @Security BasicAuth
// @Security BearerAuth
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	h.crud.list(c)
}

// getTask godoc
// @Summary Get a task by ID
// @Tags tasks
// @Produce  json
// @Param   id path int true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve task"
// @Security BasicAuth
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *taskHandler) getTask(c *gin.Context) {
	h.crud.get(c)
}

// updateTask godoc
// @Summary Update a task
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   id path int true "Task ID"
// @Param   task body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update task"
// @Security BasicAuth
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *taskHandler) updateTask(c *gin.Context) {
	h.crud.update(c)
}

// deleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Param   id path int true "Task ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete task"
// @Security BasicAuth
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	h.crud.delete(c)
}
