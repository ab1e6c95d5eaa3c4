package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// inventoryHandler handles HTTP requests related to inventory records.
type inventoryHandler struct {
	crud *crudHandler[domain.InventoryRecord, dto.CreateInventoryRequest, dto.UpdateInventoryRequest, dto.InventoryResponse]
}

// registerInventoryRoutes registers routes related to inventory records.
func registerInventoryRoutes(rg *gin.RouterGroup, svc portssvc.InventorySvcFacade) {
	h := &inventoryHandler{
		crud: newCRUDHandler[domain.InventoryRecord, dto.CreateInventoryRequest, dto.UpdateInventoryRequest, dto.InventoryResponse](
			"Inventory record", svc, dto.ToInventoryResponse, dto.ToListInventoryResponse,
		),
	}

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createInventory)
		inventory.GET("", h.listInventoryRecords)
		inventory.GET("/:id", h.getInventory)
		inventory.PUT("/:id", h.updateInventory)
		inventory.DELETE("/:id", h.deleteInventory)
	}
}

// createInventory godoc
// @Summary Create an inventory record
// @Description Records stock for a product. product_id is required; quantity defaults to 0.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   inventory body dto.CreateInventoryRequest true "Inventory record details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create inventory record"
// @Security BasicAuth
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) createInventory(c *gin.Context) {
	h.crud.create(c)
}

// listInventoryRecords godoc
// @Summary List inventory records
// @Tags inventory
// @Produce  json
// @Success 200 {array} dto.InventoryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list inventory record"
// @Security BasicAuth
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listInventoryRecords(c *gin.Context) {
	h.crud.list(c)
}

// getInventory godoc
// @Summary Get an inventory record by ID
// @Tags inventory
// @Produce  json
// @Param   id path int true "Inventory record ID"
// @Success 200 {object} dto.InventoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Inventory record not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve inventory record"
// @Security BasicAuth
// @Security BearerAuth
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getInventory(c *gin.Context) {
	h.crud.get(c)
}

// updateInventory godoc
// @Summary Update an inventory record
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path int true "Inventory record ID"
// @Param   inventory body dto.UpdateInventoryRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Inventory record not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update inventory record"
// @Security BasicAuth
// @Security BearerAuth
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateInventory(c *gin.Context) {
	h.crud.update(c)
}

// deleteInventory godoc
// @Summary Delete an inventory record
// @Tags inventory
// @Param   id path int true "Inventory record ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Inventory record not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete inventory record"
// @Security BasicAuth
// @Security BearerAuth
// @Router /inventory/{id} [delete]
func (h *inventoryHandler) deleteInventory(c *gin.Context) {
	h.crud.delete(c)
}
