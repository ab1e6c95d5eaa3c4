package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// contractHandler handles HTTP requests related to contracts.
type contractHandler struct {
	crud *crudHandler[domain.Contract, dto.CreateContractRequest, dto.UpdateContractRequest, dto.ContractResponse]
}

// registerContractRoutes registers routes related to contracts.
func registerContractRoutes(rg *gin.RouterGroup, svc portssvc.ContractSvcFacade) {
	h := &contractHandler{
		crud: newCRUDHandler[domain.Contract, dto.CreateContractRequest, dto.UpdateContractRequest, dto.ContractResponse](
			"Contract", svc, dto.ToContractResponse, dto.ToListContractResponse,
		),
	}

	contracts := rg.Group("/contracts")
	{
		contracts.POST("", h.createContract)
		contracts.GET("", h.listContracts)
		contracts.GET("/:id", h.getContract)
		contracts.PUT("/:id", h.updateContract)
		contracts.DELETE("/:id", h.deleteContract)
	}
}

// createContract godoc
// @Summary Create a contract
// @Description Creates a contract. Every field is optional.
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   contract body dto.CreateContractRequest true "Contract details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create contract"
// @Security BasicAuth
// @Security BearerAuth
// @Router /contracts [post]
func (h *contractHandler) createContract(c *gin.Context) {
	h.crud.create(c)
}

// listContracts godoc
// @Summary List contracts
// @Tags contracts
// @Produce  json
// @Success 200 {array} dto.ContractResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list contract"
// @Security BasicAuth
// @Security BearerAuth
// @Router /contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	h.crud.list(c)
}

// getContract godoc
// @Summary Get a contract by ID
// @Tags contracts
// @Produce  json
// @Param   id path int true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve contract"
// @Security BasicAuth
// @Security BearerAuth
// @Router /contracts/{id} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	h.crud.get(c)
}

// updateContract godoc
// @Summary Update a contract
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   id path int true "Contract ID"
// @Param   contract body dto.UpdateContractRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update contract"
// @Security BasicAuth
// @Security BearerAuth
// @Router /contracts/{id} [put]
func (h *contractHandler) updateContract(c *gin.Context) {
	h.crud.update(c)
}

// deleteContract godoc
// @Summary Delete a contract
// @Tags contracts
// @Param   id path int true "Contract ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete contract"
// @Security BasicAuth
// @Security BearerAuth
// @Router /contracts/{id} [delete]
func (h *contractHandler) deleteContract(c *gin.Context) {
	h.crud.delete(c)
}
