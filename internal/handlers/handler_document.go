package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// documentHandler handles HTTP requests related to documents.
type documentHandler struct {
	crud *crudHandler[domain.Document, dto.CreateDocumentRequest, dto.UpdateDocumentRequest, dto.DocumentResponse]
}

// registerDocumentRoutes registers routes related to documents.
func registerDocumentRoutes(rg *gin.RouterGroup, svc portssvc.DocumentSvcFacade) {
	h := &documentHandler{
		crud: newCRUDHandler[domain.Document, dto.CreateDocumentRequest, dto.UpdateDocumentRequest, dto.DocumentResponse](
			"Document", svc, dto.ToDocumentResponse, dto.ToListDocumentResponse,
		),
	}

	documents := rg.Group("/documents")
	{
		documents.POST("", h.createDocument)
		documents.GET("", h.listDocuments)
		documents.GET("/:id", h.getDocument)
		documents.PUT("/:id", h.updateDocument)
		documents.DELETE("/:id", h.deleteDocument)
	}
}

// createDocument godoc
// @Summary Create a document
// @Description Attaches a document to a vendor. filename is required.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create document"
// @Security BasicAuth
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	h.crud.create(c)
}

// listDocuments godoc
// @Summary List documents
// @Tags documents
// @Produce  json
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list document"
// @Security BasicAuth
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	h.crud.list(c)
}

// getDocument godoc
// @Summary Get a document by ID
// @Tags documents
// @Produce  json
// @Param   id path int true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve document"
// @Security BasicAuth
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	h.crud.get(c)
}

// updateDocument godoc
// @Summary Update a document
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   id path int true "Document ID"
// @Param   document body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update document"
// @Security BasicAuth
// @Security BearerAuth
// @Router /documents/{id} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	h.crud.update(c)
}

// deleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param   id path int true "Document ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete document"
// @Security BasicAuth
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	h.crud.delete(c)
}
