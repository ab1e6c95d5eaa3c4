package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// leadHandler handles HTTP requests related to leads.
type leadHandler struct {
	crud *crudHandler[domain.Lead, dto.CreateLeadRequest, dto.UpdateLeadRequest, dto.LeadResponse]
}

// registerLeadRoutes registers routes related to leads.
func registerLeadRoutes(rg *gin.RouterGroup, svc portssvc.LeadSvcFacade) {
	h := &leadHandler{
		crud: newCRUDHandler[domain.Lead, dto.CreateLeadRequest, dto.UpdateLeadRequest, dto.LeadResponse](
			"Lead", svc, dto.ToLeadResponse, dto.ToListLeadResponse,
		),
	}

	leads := rg.Group("/leads")
	{
		leads.POST("", h.createLead)
		leads.GET("", h.listLeads)
		leads.GET("/:id", h.getLead)
		leads.PUT("/:id", h.updateLead)
		leads.DELETE("/:id", h.deleteLead)
	}
}

// createLead godoc
// @Summary Create a lead
// @Description Creates a lead. name and stage_id are required.
// @Tags leads
// @Accept  json
// @Produce  json
// @Param   lead body dto.CreateLeadRequest true "Lead details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create lead"
// @Security BasicAuth
// @Security BearerAuth
// @Router /leads [post]
func (h *leadHandler) createLead(c *gin.Context) {
	h.crud.create(c)
}

// listLeads godoc
// @Summary List leads
// @Tags leads
// @Produce  json
// @Success 200 {array} dto.LeadResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list lead"
// @Security BasicAuth
// @Security BearerAuth
// @Router /leads [get]
func (h *leadHandler) listLeads(c *gin.Context) {
	h.crud.list(c)
}

// getLead godoc
// @Summary Get a lead by ID
// @Tags leads
// @Produce  json
// @Param   id path int true "Lead ID"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lead not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve lead"
// @Security BasicAuth
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *leadHandler) getLead(c *gin.Context) {
	h.crud.get(c)
}

// updateLead godoc
// @Summary Update a lead
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags leads
// @Accept  json
// @Produce  json
// @Param   id path int true "Lead ID"
// @Param   lead body dto.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lead not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update lead"
// @Security BasicAuth
// @Security BearerAuth
// @Router /leads/{id} [put]
func (h *leadHandler) updateLead(c *gin.Context) {
	h.crud.update(c)
}

// deleteLead godoc
// @Summary Delete a lead
// @Tags leads
// @Param   id path int true "Lead ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lead not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete lead"
// @Security BasicAuth
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *leadHandler) deleteLead(c *gin.Context) {
	h.crud.delete(c)
}
