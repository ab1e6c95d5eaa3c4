package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// noteHandler handles HTTP requests related to notes.
type noteHandler struct {
	crud *crudHandler[domain.Note, dto.CreateNoteRequest, dto.UpdateNoteRequest, dto.NoteResponse]
}

// registerNoteRoutes registers routes related to notes.
func registerNoteRoutes(rg *gin.RouterGroup, svc portssvc.NoteSvcFacade) {
	h := &noteHandler{
		crud: newCRUDHandler[domain.Note, dto.CreateNoteRequest, dto.UpdateNoteRequest, dto.NoteResponse](
			"Note", svc, dto.ToNoteResponse, dto.ToListNoteResponse,
		),
	}

	notes := rg.Group("/notes")
	{
		notes.POST("", h.createNote)
		notes.GET("", h.listNotes)
		notes.GET("/:id", h.getNote)
		notes.PUT("/:id", h.updateNote)
		notes.DELETE("/:id", h.deleteNote)
	}
}

// createNote godoc
// @Summary Create a note
// @Description Attaches a note to a project. text is required.
// @Tags notes
// @Accept  json
// @Produce  json
// @Param   note body dto.CreateNoteRequest true "Note details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create note"
// @Security BasicAuth
// @Security BearerAuth
// @Router /notes [post]
func (h *noteHandler) createNote(c *gin.Context) {
	h.crud.create(c)
}

// listNotes godoc
// @Summary List notes
// @Tags notes
// @Produce  json
// @Success 200 {array} dto.NoteResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list note"
// @Security BasicAuth
// @Security BearerAuth
// @Router /notes [get]
func (h *noteHandler) listNotes(c *gin.Context) {
	h.crud.list(c)
}

// getNote godoc
// @Summary Get a note by ID
// @Tags notes
// @Produce  json
// @Param   id path int true "Note ID"
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve note"
// @Security BasicAuth
// @Security BearerAuth
// @Router /notes/{id} [get]
func (h *noteHandler) getNote(c *gin.Context) {
	h.crud.get(c)
}

// updateNote godoc
// @Summary Update a note
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags notes
// @Accept  json
// @Produce  json
// @Param   id path int true "Note ID"
// @Param   note body dto.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update note"
// @Security BasicAuth
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *noteHandler) updateNote(c *gin.Context) {
	h.crud.update(c)
}

// deleteNote godoc
// @Summary Delete a note
// @Tags notes
// @Param   id path int true "Note ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete note"
// @Security BasicAuth
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *noteHandler) deleteNote(c *gin.Context) {
	h.crud.delete(c)
}
