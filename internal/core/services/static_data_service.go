package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
)

type staticDataService struct {
	BaseService
	lookupRepo portsrepo.LookupRepositoryFacade
}

// NewStaticDataService creates the service that seeds reference tables.
func NewStaticDataService(lookupRepo portsrepo.LookupRepositoryFacade) portssvc.StaticDataService {
	return &staticDataService{lookupRepo: lookupRepo}
}

type seedSet struct {
	table domain.LookupTable
	names []string
}

// InitializeStaticData inserts the canonical lead stages, employees and contract
// statuses into each table that is still empty. Populated tables are left alone.
func (s *staticDataService) InitializeStaticData(ctx context.Context) error {
	seeds := []seedSet{
		{table: domain.LookupLeadStages, names: domain.DefaultLeadStages},
		{table: domain.LookupEmployees, names: domain.DefaultEmployees},
		{table: domain.LookupContractStatuses, names: domain.DefaultContractStatuses},
	}

	for _, seed := range seeds {
		count, err := s.lookupRepo.CountRows(ctx, seed.table)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", seed.table, err)
		}
		if count > 0 {
			s.LogDebug(ctx, "Reference data already present", slog.String("table", string(seed.table)), slog.Int("rows", count))
			continue
		}
		if err := s.lookupRepo.InsertNames(ctx, seed.table, seed.names); err != nil {
			return fmt.Errorf("failed to seed %s: %w", seed.table, err)
		}
		s.LogInfo(ctx, "Seeded reference data", slog.String("table", string(seed.table)), slog.Int("rows", len(seed.names)))
	}
	return nil
}
