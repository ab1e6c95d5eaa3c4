package services

import (
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

func NewProposalService(repo portsrepo.ProposalRepositoryFacade) portssvc.ProposalSvcFacade {
	return &entityService[domain.Proposal, dto.CreateProposalRequest, dto.UpdateProposalRequest]{
		entity: "Proposal",
		repo:   repo,
		build: func(req dto.CreateProposalRequest) (*domain.Proposal, error) {
			return &domain.Proposal{ProjectID: req.ProjectID, Description: req.Description}, nil
		},
		apply: func(p *domain.Proposal, req dto.UpdateProposalRequest) error {
			setNullable(&p.ProjectID, req.ProjectID)
			setNullable(&p.Description, req.Description)
			return nil
		},
	}
}

func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &entityService[domain.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]{
		entity: "Invoice",
		repo:   repo,
		build: func(req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
			return &domain.Invoice{ProposalID: req.ProposalID, Amount: dto.ToNullDecimal(req.Amount)}, nil
		},
		apply: func(inv *domain.Invoice, req dto.UpdateInvoiceRequest) error {
			setNullable(&inv.ProposalID, req.ProposalID)
			setMoney(&inv.Amount, req.Amount)
			return nil
		},
	}
}
