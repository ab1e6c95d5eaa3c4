package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	crud *crudHandler[domain.Client, dto.CreateClientRequest, dto.UpdateClientRequest, dto.ClientResponse]
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, svc portssvc.ClientSvcFacade) {
	h := &clientHandler{
		crud: newCRUDHandler[domain.Client, dto.CreateClientRequest, dto.UpdateClientRequest, dto.ClientResponse](
			"Client", svc, dto.ToClientResponse, dto.ToListClientResponse,
		),
	}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:id", h.getClient)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
	}
}

// createClient godoc
// @Summary Create a client
// @Description Creates a client. When name is omitted it is derived from first_name and last_name.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create client"
// @Security BasicAuth
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	h.crud.create(c)
}

// listClients godoc
// @Summary List clients
// @Tags clients
// @Produce  json
// @Success 200 {array} dto.ClientResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list client"
// @Security BasicAuth
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	h.crud.list(c)
}

// getClient godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce  json
// @Param   id path int true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Client not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve client"
// @Security BasicAuth
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	h.crud.get(c)
}

// updateClient godoc
// @Summary Update a client
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   id path int true "Client ID"
// @Param   client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Client not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update client"
// @Security BasicAuth
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	h.crud.update(c)
}

// deleteClient godoc
// @Summary Delete a client
// @Tags clients
// @Param   id path int true "Client ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Client not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete client"
// @Security BasicAuth
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	h.crud.delete(c)
}
