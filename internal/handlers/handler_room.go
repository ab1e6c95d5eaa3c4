package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// roomHandler handles HTTP requests related to rooms.
type roomHandler struct {
	crud *crudHandler[domain.Room, dto.CreateRoomRequest, dto.UpdateRoomRequest, dto.RoomResponse]
}

// registerRoomRoutes registers routes related to rooms.
func registerRoomRoutes(rg *gin.RouterGroup, svc portssvc.RoomSvcFacade) {
	h := &roomHandler{
		crud: newCRUDHandler[domain.Room, dto.CreateRoomRequest, dto.UpdateRoomRequest, dto.RoomResponse](
			"Room", svc, dto.ToRoomResponse, dto.ToListRoomResponse,
		),
	}

	rooms := rg.Group("/rooms")
	{
		rooms.POST("", h.createRoom)
		rooms.GET("", h.listRooms)
		rooms.GET("/:id", h.getRoom)
		rooms.PUT("/:id", h.updateRoom)
		rooms.DELETE("/:id", h.deleteRoom)
	}
}

// createRoom godoc
// @Summary Create a room
// @Description Creates a room within a project. name is required.
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create room"
// @Security BasicAuth
// @Security BearerAuth
// @Router /rooms [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	h.crud.create(c)
}

// listRooms godoc
// @Summary List rooms
// @Tags rooms
// @Produce  json
// @Success 200 {array} dto.RoomResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list room"
// @Security BasicAuth
// @Security BearerAuth
// @Router /rooms [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	h.crud.list(c)
}

// getRoom godoc
// @Summary Get a room by ID
// @Tags rooms
// @Produce  json
// @Param   id path int true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve room"
// @Security BasicAuth
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (h *roomHandler) getRoom(c *gin.Context) {
	h.crud.get(c)
}

// updateRoom godoc
// @Summary Update a room
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   id path int true "Room ID"
// @Param   room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update room"
// @Security BasicAuth
// @Security BearerAuth
// @Router /rooms/{id} [put]
func (h *roomHandler) updateRoom(c *gin.Context) {
	h.crud.update(c)
}

// deleteRoom godoc
// @Summary Delete a room
// @Tags rooms
// @Param   id path int true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete room"
// @Security BasicAuth
// @Security BearerAuth
// @Router /rooms/{id} [delete]
func (h *roomHandler) deleteRoom(c *gin.Context) {
	h.crud.delete(c)
}
