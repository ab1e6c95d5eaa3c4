package dto

import (
	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProposalRequest defines the data needed to create a proposal.
type CreateProposalRequest struct {
	ProjectID   *int64  `json:"project_id"`
	Description *string `json:"description"`
}

// UpdateProposalRequest defines the fields that may be changed on a proposal.
type UpdateProposalRequest struct {
	ProjectID   Nullable[int64]  `json:"project_id" swaggertype:"integer"`
	Description Nullable[string] `json:"description" swaggertype:"string"`
}

// ProposalResponse defines the data returned for a proposal.
type ProposalResponse struct {
	ID          int64   `json:"id"`
	ProjectID   *int64  `json:"project_id"`
	Project     *string `json:"project"`
	Description *string `json:"description"`
}

func ToProposalResponse(p *domain.Proposal) ProposalResponse {
	return ProposalResponse{ID: p.ID, ProjectID: p.ProjectID, Project: p.ProjectName, Description: p.Description}
}

func ToListProposalResponse(proposals []domain.Proposal) []ProposalResponse {
	res := make([]ProposalResponse, len(proposals))
	for i := range proposals {
		res[i] = ToProposalResponse(&proposals[i])
	}
	return res
}

// CreateInvoiceRequest defines the data needed to create an invoice.
type CreateInvoiceRequest struct {
	ProposalID *int64           `json:"proposal_id"`
	Amount     *decimal.Decimal `json:"amount"`
}

// UpdateInvoiceRequest defines the fields that may be changed on an invoice.
type UpdateInvoiceRequest struct {
	ProposalID Nullable[int64]           `json:"proposal_id" swaggertype:"integer"`
	Amount     Nullable[decimal.Decimal] `json:"amount" swaggertype:"string"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID         int64   `json:"id"`
	ProposalID *int64  `json:"proposal_id"`
	Amount     *string `json:"amount"`
}

func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{ID: inv.ID, ProposalID: inv.ProposalID, Amount: FormatMoney(inv.Amount)}
}

func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
