package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/schergr/interiordesign/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitializeStaticData_SeedsEmptyTables(t *testing.T) {
	ctx := context.Background()
	repo := new(mockLookupRepo)
	repo.On("CountRows", ctx, domain.LookupLeadStages).Return(0, nil).Once()
	repo.On("CountRows", ctx, domain.LookupEmployees).Return(0, nil).Once()
	repo.On("CountRows", ctx, domain.LookupContractStatuses).Return(0, nil).Once()
	repo.On("InsertNames", ctx, domain.LookupLeadStages, domain.DefaultLeadStages).Return(nil).Once()
	repo.On("InsertNames", ctx, domain.LookupEmployees, domain.DefaultEmployees).Return(nil).Once()
	repo.On("InsertNames", ctx, domain.LookupContractStatuses, domain.DefaultContractStatuses).Return(nil).Once()

	require.NoError(t, services.NewStaticDataService(repo).InitializeStaticData(ctx))
	repo.AssertExpectations(t)
}

func TestInitializeStaticData_LeavesPopulatedTables(t *testing.T) {
	ctx := context.Background()
	repo := new(mockLookupRepo)
	repo.On("CountRows", ctx, domain.LookupLeadStages).Return(3, nil).Once()
	repo.On("CountRows", ctx, domain.LookupEmployees).Return(1, nil).Once()
	repo.On("CountRows", ctx, domain.LookupContractStatuses).Return(0, nil).Once()
	repo.On("InsertNames", ctx, domain.LookupContractStatuses, domain.DefaultContractStatuses).Return(nil).Once()

	require.NoError(t, services.NewStaticDataService(repo).InitializeStaticData(ctx))
	repo.AssertNumberOfCalls(t, "InsertNames", 1)
}

func TestInitializeStaticData_CountError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockLookupRepo)
	dbErr := errors.New("relation does not exist")
	repo.On("CountRows", ctx, domain.LookupLeadStages).Return(0, dbErr).Once()

	err := services.NewStaticDataService(repo).InitializeStaticData(ctx)

	assert.ErrorIs(t, err, dbErr)
	repo.AssertNotCalled(t, "InsertNames", mock.Anything, mock.Anything, mock.Anything)
}
