package dto

import "github.com/schergr/interiordesign/internal/core/domain"

// CreateEmployeeRequest defines the data needed to add an employee.
type CreateEmployeeRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// UpdateEmployeeRequest defines the fields that may be changed on an employee.
type UpdateEmployeeRequest struct {
	Name *string `json:"name" binding:"omitempty,notblank"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{ID: e.ID, Name: e.Name}
}

func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
