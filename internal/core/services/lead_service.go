package services

import (
	"context"

	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

func NewLeadService(repo portsrepo.LeadRepositoryFacade) portssvc.LeadSvcFacade {
	return &entityService[domain.Lead, dto.CreateLeadRequest, dto.UpdateLeadRequest]{
		entity: "Lead",
		repo:   repo,
		build: func(req dto.CreateLeadRequest) (*domain.Lead, error) {
			if err := requireText("name", req.Name); err != nil {
				return nil, err
			}
			if req.StageID == nil {
				return nil, apperrors.Validationf("Invalid input: stage_id is required")
			}
			return &domain.Lead{Name: req.Name, ContactInfo: req.ContactInfo, StageID: req.StageID}, nil
		},
		apply: func(l *domain.Lead, req dto.UpdateLeadRequest) error {
			if err := setTextIfPresent("name", &l.Name, req.Name); err != nil {
				return err
			}
			setNullable(&l.ContactInfo, req.ContactInfo)
			return setRequiredRef("stage_id", &l.StageID, req.StageID)
		},
	}
}

// lookupService exposes the read-only reference tables.
type lookupService struct {
	BaseService
	repo portsrepo.LookupRepositoryFacade
}

func NewLookupService(repo portsrepo.LookupRepositoryFacade) portssvc.LookupSvcFacade {
	return &lookupService{repo: repo}
}

func (s *lookupService) ListLeadStages(ctx context.Context) ([]domain.LeadStage, error) {
	stages, err := s.repo.ListLeadStages(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list lead stages")
		return nil, err
	}
	return stages, nil
}

func (s *lookupService) ListContractStatuses(ctx context.Context) ([]domain.ContractStatus, error) {
	statuses, err := s.repo.ListContractStatuses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contract statuses")
		return nil, err
	}
	return statuses, nil
}
