package dto

import (
	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContractRequest defines the data needed to create a contract. Every field is optional.
type CreateContractRequest struct {
	ClientID   *int64           `json:"client_id"`
	EmployeeID *int64           `json:"employee_id"`
	ProjectID  *int64           `json:"project_id"`
	LeadID     *int64           `json:"lead_id"`
	StatusID   *int64           `json:"status_id"`
	StartDate  *string          `json:"start_date"`
	EndDate    *string          `json:"end_date"`
	Amount     *decimal.Decimal `json:"amount"`
}

// UpdateContractRequest defines the fields that may be changed on a contract.
type UpdateContractRequest struct {
	ClientID   Nullable[int64]           `json:"client_id" swaggertype:"integer"`
	EmployeeID Nullable[int64]           `json:"employee_id" swaggertype:"integer"`
	ProjectID  Nullable[int64]           `json:"project_id" swaggertype:"integer"`
	LeadID     Nullable[int64]           `json:"lead_id" swaggertype:"integer"`
	StatusID   Nullable[int64]           `json:"status_id" swaggertype:"integer"`
	StartDate  Nullable[string]          `json:"start_date" swaggertype:"string"`
	EndDate    Nullable[string]          `json:"end_date" swaggertype:"string"`
	Amount     Nullable[decimal.Decimal] `json:"amount" swaggertype:"string"`
}

// ContractResponse defines the data returned for a contract.
type ContractResponse struct {
	ID         int64   `json:"id"`
	ClientID   *int64  `json:"client_id"`
	Client     *string `json:"client"`
	EmployeeID *int64  `json:"employee_id"`
	Employee   *string `json:"employee"`
	ProjectID  *int64  `json:"project_id"`
	Project    *string `json:"project"`
	LeadID     *int64  `json:"lead_id"`
	Lead       *string `json:"lead"`
	StatusID   *int64  `json:"status_id"`
	Status     *string `json:"status"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	Amount     *string `json:"amount"`
}

// ToContractResponse converts a domain.Contract to ContractResponse DTO
func ToContractResponse(c *domain.Contract) ContractResponse {
	return ContractResponse{
		ID:         c.ID,
		ClientID:   c.ClientID,
		Client:     c.ClientName,
		EmployeeID: c.EmployeeID,
		Employee:   c.EmployeeName,
		ProjectID:  c.ProjectID,
		Project:    c.ProjectName,
		LeadID:     c.LeadID,
		Lead:       c.LeadName,
		StatusID:   c.StatusID,
		Status:     c.StatusName,
		StartDate:  FormatDate(c.StartDate),
		EndDate:    FormatDate(c.EndDate),
		Amount:     FormatMoney(c.Amount),
	}
}

// ToListContractResponse converts a slice of domain.Contract to a slice of ContractResponse DTOs
func ToListContractResponse(contracts []domain.Contract) []ContractResponse {
	res := make([]ContractResponse, len(contracts))
	for i := range contracts {
		res[i] = ToContractResponse(&contracts[i])
	}
	return res
}

// LookupResponse is a row of a read-only reference table.
type LookupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToListLeadStageResponse(stages []domain.LeadStage) []LookupResponse {
	res := make([]LookupResponse, len(stages))
	for i, s := range stages {
		res[i] = LookupResponse{ID: s.ID, Name: s.Name}
	}
	return res
}

func ToListContractStatusResponse(statuses []domain.ContractStatus) []LookupResponse {
	res := make([]LookupResponse, len(statuses))
	for i, s := range statuses {
		res[i] = LookupResponse{ID: s.ID, Name: s.Name}
	}
	return res
}
