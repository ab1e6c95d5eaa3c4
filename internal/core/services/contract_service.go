package services

import (
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// NewContractService creates the contract service. Every contract field is optional.
func NewContractService(repo portsrepo.ContractRepositoryFacade) portssvc.ContractSvcFacade {
	return &entityService[domain.Contract, dto.CreateContractRequest, dto.UpdateContractRequest]{
		entity: "Contract",
		repo:   repo,
		build:  buildContract,
		apply:  applyContractUpdate,
	}
}

func buildContract(req dto.CreateContractRequest) (*domain.Contract, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	return &domain.Contract{
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ProjectID:  req.ProjectID,
		LeadID:     req.LeadID,
		StatusID:   req.StatusID,
		StartDate:  start,
		EndDate:    end,
		Amount:     dto.ToNullDecimal(req.Amount),
	}, nil
}

func applyContractUpdate(c *domain.Contract, req dto.UpdateContractRequest) error {
	setNullable(&c.ClientID, req.ClientID)
	setNullable(&c.EmployeeID, req.EmployeeID)
	setNullable(&c.ProjectID, req.ProjectID)
	setNullable(&c.LeadID, req.LeadID)
	setNullable(&c.StatusID, req.StatusID)
	if err := setDate("start_date", &c.StartDate, req.StartDate); err != nil {
		return err
	}
	if err := setDate("end_date", &c.EndDate, req.EndDate); err != nil {
		return err
	}
	setMoney(&c.Amount, req.Amount)
	return nil
}
