package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// itemHandler handles HTTP requests related to items.
type itemHandler struct {
	crud *crudHandler[domain.Item, dto.CreateItemRequest, dto.UpdateItemRequest, dto.ItemResponse]
}

// registerItemRoutes registers routes related to items.
func registerItemRoutes(rg *gin.RouterGroup, svc portssvc.ItemSvcFacade) {
	h := &itemHandler{
		crud: newCRUDHandler[domain.Item, dto.CreateItemRequest, dto.UpdateItemRequest, dto.ItemResponse](
			"Item", svc, dto.ToItemResponse, dto.ToListItemResponse,
		),
	}

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:id", h.getItem)
		items.PUT("/:id", h.updateItem)
		items.DELETE("/:id", h.deleteItem)
	}
}

// createItem godoc
// @Summary Create an item
// @Description Creates an item placed in a room. name is required.
// @Tags items
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create item"
// @Security BasicAuth
// @Security BearerAuth
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	h.crud.create(c)
}

// listItems godoc
// @Summary List items
// @Tags items
// @Produce  json
// @Success 200 {array} dto.ItemResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list item"
// @Security BasicAuth
// @Security BearerAuth
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	h.crud.list(c)
}

// getItem godoc
// @Summary Get an item by ID
// @Tags items
// @Produce  json
// @Param   id path int true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve item"
// @Security BasicAuth
// @Security BearerAuth
// @Router /items/{id} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	h.crud.get(c)
}

// updateItem godoc
// @Summary Update an item
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags items
// @Accept  json
// @Produce  json
// @Param   id path int true "Item ID"
// @Param   item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update item"
// @Security BasicAuth
// @Security BearerAuth
// @Router /items/{id} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	h.crud.update(c)
}

// deleteItem godoc
// @Summary Delete an item
// @Tags items
// @Param   id path int true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete item"
// @Security BasicAuth
// @Security BearerAuth
// @Router /items/{id} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	h.crud.delete(c)
}
