package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	crud *crudHandler[domain.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest, dto.InvoiceResponse]
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, svc portssvc.InvoiceSvcFacade) {
	h := &invoiceHandler{
		crud: newCRUDHandler[domain.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest, dto.InvoiceResponse](
			"Invoice", svc, dto.ToInvoiceResponse, dto.ToListInvoiceResponse,
		),
	}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Creates an invoice against a proposal. amount accepts a string or a number.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create invoice"
// @Security BasicAuth
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	h.crud.create(c)
}

// listInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce  json
// @Success 200 {array} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list invoice"
// @Security BasicAuth
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	h.crud.list(c)
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Tags invoices
// @Produce  json
// @Param   id path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve invoice"
// @Security BasicAuth
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	h.crud.get(c)
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path int true "Invoice ID"
// @Param   invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update invoice"
// @Security BasicAuth
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	h.crud.update(c)
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Param   id path int true "Invoice ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete invoice"
// @Security BasicAuth
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	h.crud.delete(c)
}
