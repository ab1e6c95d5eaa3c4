package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// vendorHandler handles HTTP requests related to vendors.
type vendorHandler struct {
	crud *crudHandler[domain.Vendor, dto.CreateVendorRequest, dto.UpdateVendorRequest, dto.VendorResponse]
}

// registerVendorRoutes registers routes related to vendors.
func registerVendorRoutes(rg *gin.RouterGroup, svc portssvc.VendorSvcFacade) {
	h := &vendorHandler{
		crud: newCRUDHandler[domain.Vendor, dto.CreateVendorRequest, dto.UpdateVendorRequest, dto.VendorResponse](
			"Vendor", svc, dto.ToVendorResponse, dto.ToListVendorResponse,
		),
	}

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:id", h.getVendor)
		vendors.PUT("/:id", h.updateVendor)
		vendors.DELETE("/:id", h.deleteVendor)
	}
}

// createVendor godoc
// @Summary Create a vendor
// @Description Creates a vendor. name is required.
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create vendor"
// @Security BasicAuth
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	h.crud.create(c)
}

// listVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce  json
// @Success 200 {array} dto.VendorResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list vendor"
// @Security BasicAuth
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	h.crud.list(c)
}

// getVendor godoc
// @Summary Get a vendor by ID
// @Tags vendors
// @Produce  json
// @Param   id path int true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Vendor not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve vendor"
// @Security BasicAuth
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	h.crud.get(c)
}

// updateVendor godoc
// @Summary Update a vendor
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   id path int true "Vendor ID"
// @Param   vendor body dto.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Vendor not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update vendor"
// @Security BasicAuth
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *vendorHandler) updateVendor(c *gin.Context) {
	h.crud.update(c)
}

// deleteVendor godoc
// @Summary Delete a vendor
// @Tags vendors
// @Param   id path int true "Vendor ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Vendor not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete vendor"
// @Security BasicAuth
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *vendorHandler) deleteVendor(c *gin.Context) {
	h.crud.delete(c)
}
