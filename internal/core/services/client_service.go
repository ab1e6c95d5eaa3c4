package services

import (
	"strings"

	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// NewClientService creates the client service.
func NewClientService(repo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &entityService[domain.Client, dto.CreateClientRequest, dto.UpdateClientRequest]{
		entity: "Client",
		repo:   repo,
		build:  buildClient,
		apply:  applyClientUpdate,
	}
}

// buildClient derives the display name from first and last name when none is given.
func buildClient(req dto.CreateClientRequest) (*domain.Client, error) {
	var name string
	if req.Name != nil {
		name = *req.Name
	}
	if strings.TrimSpace(name) == "" {
		name = domain.DeriveClientName(req.FirstName, req.LastName)
	}
	if name == "" {
		return nil, apperrors.Validationf("Invalid input: name or first_name/last_name is required")
	}
	return &domain.Client{
		Name:           name,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PrimaryPhone:   req.PrimaryPhone,
		PrimaryEmail:   req.PrimaryEmail,
		SecondaryPhone: req.SecondaryPhone,
		SecondaryEmail: req.SecondaryEmail,
		ReferralType:   req.ReferralType,
		EmployeeID:     req.EmployeeID,
		ContactInfo:    req.ContactInfo,
	}, nil
}

func applyClientUpdate(c *domain.Client, req dto.UpdateClientRequest) error {
	if err := setTextIfPresent("name", &c.Name, req.Name); err != nil {
		return err
	}
	setNullable(&c.FirstName, req.FirstName)
	setNullable(&c.LastName, req.LastName)
	setNullable(&c.PrimaryPhone, req.PrimaryPhone)
	setNullable(&c.PrimaryEmail, req.PrimaryEmail)
	setNullable(&c.SecondaryPhone, req.SecondaryPhone)
	setNullable(&c.SecondaryEmail, req.SecondaryEmail)
	setNullable(&c.ReferralType, req.ReferralType)
	setNullable(&c.EmployeeID, req.EmployeeID)
	setNullable(&c.ContactInfo, req.ContactInfo)
	return nil
}
