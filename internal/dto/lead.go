package dto

import "github.com/schergr/interiordesign/internal/core/domain"

// CreateLeadRequest defines the data needed to create a lead.
type CreateLeadRequest struct {
	Name        string  `json:"name" binding:"required,notblank"`
	ContactInfo *string `json:"contact_info"`
	StageID     *int64  `json:"stage_id" binding:"required"`
}

// UpdateLeadRequest defines the fields that may be changed on a lead.
type UpdateLeadRequest struct {
	Name        *string          `json:"name" binding:"omitempty,notblank"`
	ContactInfo Nullable[string] `json:"contact_info" swaggertype:"string"`
	StageID     Nullable[int64]  `json:"stage_id" swaggertype:"integer"`
}

// LeadResponse defines the data returned for a lead.
type LeadResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ContactInfo *string `json:"contact_info"`
	StageID     *int64  `json:"stage_id"`
	Stage       *string `json:"stage"`
}

func ToLeadResponse(l *domain.Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		Name:        l.Name,
		ContactInfo: l.ContactInfo,
		StageID:     l.StageID,
		Stage:       l.StageName,
	}
}

func ToListLeadResponse(leads []domain.Lead) []LeadResponse {
	res := make([]LeadResponse, len(leads))
	for i := range leads {
		res[i] = ToLeadResponse(&leads[i])
	}
	return res
}
