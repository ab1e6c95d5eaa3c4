package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	crud *crudHandler[domain.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest, dto.ProjectResponse]
}

// registerProjectRoutes registers routes related to projects.
func registerProjectRoutes(rg *gin.RouterGroup, svc portssvc.ProjectSvcFacade) {
	h := &projectHandler{
		crud: newCRUDHandler[domain.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest, dto.ProjectResponse](
			"Project", svc, dto.ToProjectResponse, dto.ToListProjectResponse,
		),
	}

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
	}
}

// createProject godoc
// @Summary Create a project
// @Description Creates a project and links each of product_ids with a quantity of 1.
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create project"
// @Security BasicAuth
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	h.crud.create(c)
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce  json
// @Success 200 {array} dto.ProjectResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list project"
// @Security BasicAuth
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	h.crud.list(c)
}

// getProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce  json
// @Param   id path int true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve project"
// @Security BasicAuth
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	h.crud.get(c)
}

// updateProject godoc
// @Summary Update a project
// @Description A product_ids array replaces every product link of the project.
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   id path int true "Project ID"
// @Param   project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update project"
// @Security BasicAuth
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	h.crud.update(c)
}

// deleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Param   id path int true "Project ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete project"
// @Security BasicAuth
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	h.crud.delete(c)
}
