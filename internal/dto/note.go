package dto

import "github.com/schergr/interiordesign/internal/core/domain"

type CreateNoteRequest struct {
	Text      string `json:"text" binding:"required,notblank"`
	ProjectID *int64 `json:"project_id"`
}

type UpdateNoteRequest struct {
	Text      *string         `json:"text" binding:"omitempty,notblank"`
	ProjectID Nullable[int64] `json:"project_id" swaggertype:"integer"`
}

type NoteResponse struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	ProjectID *int64  `json:"project_id"`
	Project   *string `json:"project"`
}

func ToNoteResponse(n *domain.Note) NoteResponse {
	return NoteResponse{ID: n.ID, Text: n.Text, ProjectID: n.ProjectID, Project: n.ProjectName}
}

func ToListNoteResponse(notes []domain.Note) []NoteResponse {
	res := make([]NoteResponse, len(notes))
	for i := range notes {
		res[i] = ToNoteResponse(&notes[i])
	}
	return res
}
