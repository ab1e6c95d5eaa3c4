package dto

import "github.com/schergr/interiordesign/internal/core/domain"

// CreateProjectRequest defines the data needed to create a project.
// Each product id is linked to the new project with a quantity of 1.
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,notblank"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	ClientID    *int64  `json:"client_id"`
	ProductIDs  []int64 `json:"product_ids"`
}

// UpdateProjectRequest defines the fields that may be changed on a project.
// A non-nil ProductIDs replaces every product link of the project.
type UpdateProjectRequest struct {
	Name        *string          `json:"name" binding:"omitempty,notblank"`
	Description Nullable[string] `json:"description" swaggertype:"string"`
	StartDate   Nullable[string] `json:"start_date" swaggertype:"string"`
	ClientID    Nullable[int64]  `json:"client_id" swaggertype:"integer"`
	ProductIDs  []int64          `json:"product_ids"`
}

// ProjectProductResponse is one product linked to a project.
type ProjectProductResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ID          int64                    `json:"id"`
	Name        string                   `json:"name"`
	Description *string                  `json:"description"`
	StartDate   *string                  `json:"start_date"`
	ClientID    *int64                   `json:"client_id"`
	Client      *string                  `json:"client"`
	Products    []ProjectProductResponse `json:"products"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO
func ToProjectResponse(p *domain.Project) ProjectResponse {
	products := make([]ProjectProductResponse, len(p.Products))
	for i, pp := range p.Products {
		products[i] = ProjectProductResponse{ID: pp.ProductID, Name: pp.ProductName, Quantity: pp.Quantity}
	}
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   FormatDate(p.StartDate),
		ClientID:    p.ClientID,
		Client:      p.ClientName,
		Products:    products,
	}
}

// ToListProjectResponse converts a slice of domain.Project to a slice of ProjectResponse DTOs
func ToListProjectResponse(projects []domain.Project) []ProjectResponse {
	res := make([]ProjectResponse, len(projects))
	for i := range projects {
		res[i] = ToProjectResponse(&projects[i])
	}
	return res
}
