package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// proposalHandler handles HTTP requests related to proposals.
type proposalHandler struct {
	crud *crudHandler[domain.Proposal, dto.CreateProposalRequest, dto.UpdateProposalRequest, dto.ProposalResponse]
}

// registerProposalRoutes registers routes related to proposals.
func registerProposalRoutes(rg *gin.RouterGroup, svc portssvc.ProposalSvcFacade) {
	h := &proposalHandler{
		crud: newCRUDHandler[domain.Proposal, dto.CreateProposalRequest, dto.UpdateProposalRequest, dto.ProposalResponse](
			"Proposal", svc, dto.ToProposalResponse, dto.ToListProposalResponse,
		),
	}

	proposals := rg.Group("/proposals")
	{
		proposals.POST("", h.createProposal)
		proposals.GET("", h.listProposals)
		proposals.GET("/:id", h.getProposal)
		proposals.PUT("/:id", h.updateProposal)
		proposals.DELETE("/:id", h.deleteProposal)
	}
}

// createProposal godoc
// @Summary Create a proposal
// @Description Creates a proposal for a project. Every field is optional.
// @Tags proposals
// @Accept  json
// @Produce  json
// @Param   proposal body dto.CreateProposalRequest true "Proposal details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create proposal"
// @Security BasicAuth
// @Security BearerAuth
// @Router /proposals [post]
func (h *proposalHandler) createProposal(c *gin.Context) {
	h.crud.create(c)
}

// listProposals godoc
// @Summary List proposals
// @Tags proposals
// @Produce  json
// @Success 200 {array} dto.ProposalResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list proposal"
// @Security BasicAuth
// @Security BearerAuth
// @Router /proposals [get]
func (h *proposalHandler) listProposals(c *gin.Context) {
	h.crud.list(c)
}

// getProposal godoc
// @Summary Get a proposal by ID
// @Tags proposals
// @Produce  json
// @Param   id path int true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Proposal not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve proposal"
// @Security BasicAuth
// @Security BearerAuth
// @Router /proposals/{id} [get]
func (h *proposalHandler) getProposal(c *gin.Context) {
	h.crud.get(c)
}

// updateProposal godoc
// @Summary Update a proposal
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags proposals
// @Accept  json
// @Produce  json
// @Param   id path int true "Proposal ID"
// @Param   proposal body dto.UpdateProposalRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Proposal not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update proposal"
// @Security BasicAuth
// @Security BearerAuth
// @Router /proposals/{id} [put]
func (h *proposalHandler) updateProposal(c *gin.Context) {
	h.crud.update(c)
}

// deleteProposal godoc
// @Summary Delete a proposal
// @Tags proposals
// @Param   id path int true "Proposal ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Proposal not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete proposal"
// @Security BasicAuth
// @Security BearerAuth
// @Router /proposals/{id} [delete]
func (h *proposalHandler) deleteProposal(c *gin.Context) {
	h.crud.delete(c)
}
