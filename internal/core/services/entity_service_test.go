package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/schergr/interiordesign/internal/core/services"
	"github.com/schergr/interiordesign/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EntityServiceTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (suite *EntityServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
}

func TestEntityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntityServiceTestSuite))
}

func (suite *EntityServiceTestSuite) TestVendorCreateThenList() {
	repo := new(mockEntityRepo[domain.Vendor])
	svc := services.NewVendorService(repo)

	repo.On("Create", suite.ctx, mock.MatchedBy(func(v *domain.Vendor) bool {
		return v.Name == "Acme Fabrics" && v.City != nil && *v.City == "Austin"
	})).Return(int64(1), nil).Once()
	repo.On("List", suite.ctx).Return([]domain.Vendor{{ID: 1, Name: "Acme Fabrics", City: ptr("Austin")}}, nil).Once()

	id, err := svc.Create(suite.ctx, dto.CreateVendorRequest{Name: "Acme Fabrics", City: ptr("Austin")})
	suite.Require().NoError(err)
	suite.Equal(int64(1), id)

	list, err := svc.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal("Acme Fabrics", list[0].Name)
	repo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestVendorCreate_BlankName() {
	repo := new(mockEntityRepo[domain.Vendor])
	svc := services.NewVendorService(repo)

	_, err := svc.Create(suite.ctx, dto.CreateVendorRequest{Name: "   "})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	repo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *EntityServiceTestSuite) TestList_EmptyTableReturnsEmptySlice() {
	repo := new(mockEntityRepo[domain.Note])
	svc := services.NewNoteService(repo)
	repo.On("List", suite.ctx).Return(nil, nil).Once()

	list, err := svc.List(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(list)
	suite.Empty(list)
}

func (suite *EntityServiceTestSuite) TestClientCreate_DerivesName() {
	repo := new(mockEntityRepo[domain.Client])
	svc := services.NewClientService(repo)

	repo.On("Create", suite.ctx, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Name == "Ada Lovelace"
	})).Return(int64(4), nil).Once()

	id, err := svc.Create(suite.ctx, dto.CreateClientRequest{FirstName: ptr("Ada"), LastName: ptr("Lovelace")})

	suite.Require().NoError(err)
	suite.Equal(int64(4), id)
	repo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestClientCreate_OnlyLastName() {
	repo := new(mockEntityRepo[domain.Client])
	svc := services.NewClientService(repo)

	repo.On("Create", suite.ctx, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Name == "Lovelace"
	})).Return(int64(5), nil).Once()

	_, err := svc.Create(suite.ctx, dto.CreateClientRequest{LastName: ptr("Lovelace")})

	suite.Require().NoError(err)
	repo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestClientCreate_NoNameFields() {
	repo := new(mockEntityRepo[domain.Client])
	svc := services.NewClientService(repo)

	_, err := svc.Create(suite.ctx, dto.CreateClientRequest{PrimaryPhone: ptr("555-0100")})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Invalid input: name or first_name/last_name is required", apperrors.Message(err, ""))
	repo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *EntityServiceTestSuite) TestContractUpdate_KeepsOmittedFields() {
	repo := new(mockEntityRepo[domain.Contract])
	svc := services.NewContractService(repo)

	amount := decimal.RequireFromString("100")
	stored := &domain.Contract{
		ID:       9,
		StatusID: ptr(int64(1)),
		Amount:   decimal.NullDecimal{Decimal: amount, Valid: true},
	}
	repo.On("FindByID", suite.ctx, int64(9)).Return(stored, nil).Once()
	repo.On("Update", suite.ctx, mock.MatchedBy(func(c *domain.Contract) bool {
		return *c.StatusID == 2 && c.Amount.Valid && c.Amount.Decimal.Equal(amount)
	})).Return(nil).Once()

	updated, err := svc.Update(suite.ctx, 9, dto.UpdateContractRequest{StatusID: dto.NullableValue(int64(2))})

	suite.Require().NoError(err)
	suite.Equal("100.00", *dto.FormatMoney(updated.Amount))
	suite.Equal(int64(2), *updated.StatusID)
	repo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestContractUpdate_NullClearsFields() {
	repo := new(mockEntityRepo[domain.Contract])
	svc := services.NewContractService(repo)

	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	stored := &domain.Contract{
		ID:        1,
		ClientID:  ptr(int64(4)),
		StatusID:  ptr(int64(2)),
		StartDate: &start,
		Amount:    decimal.NullDecimal{Decimal: decimal.RequireFromString("100"), Valid: true},
	}
	repo.On("FindByID", suite.ctx, int64(1)).Return(stored, nil).Once()
	repo.On("Update", suite.ctx, mock.MatchedBy(func(c *domain.Contract) bool {
		return c.ClientID == nil && c.StartDate == nil && !c.Amount.Valid &&
			c.StatusID != nil && *c.StatusID == 2
	})).Return(nil).Once()

	_, err := svc.Update(suite.ctx, 1, dto.UpdateContractRequest{
		ClientID:  dto.NullableNull[int64](),
		StartDate: dto.NullableNull[string](),
		Amount:    dto.NullableNull[decimal.Decimal](),
	})

	suite.Require().NoError(err)
	repo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestLeadUpdate_NullStageRejected() {
	repo := new(mockEntityRepo[domain.Lead])
	svc := services.NewLeadService(repo)

	repo.On("FindByID", suite.ctx, int64(6)).Return(&domain.Lead{ID: 6, Name: "Smith", StageID: ptr(int64(1))}, nil).Once()

	_, err := svc.Update(suite.ctx, 6, dto.UpdateLeadRequest{StageID: dto.NullableNull[int64]()})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Invalid input: stage_id is required", apperrors.Message(err, ""))
	repo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *EntityServiceTestSuite) TestContractCreate_InvalidDate() {
	repo := new(mockEntityRepo[domain.Contract])
	svc := services.NewContractService(repo)

	_, err := svc.Create(suite.ctx, dto.CreateContractRequest{StartDate: ptr("03/01/2026")})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(apperrors.Message(err, ""), "start_date")
}

func (suite *EntityServiceTestSuite) TestProjectCreate_LinksProductsOnce() {
	repo := new(mockEntityRepo[domain.Project])
	svc := services.NewProjectService(repo)

	repo.On("Create", suite.ctx, mock.MatchedBy(func(p *domain.Project) bool {
		if len(p.Products) != 2 {
			return false
		}
		for _, pp := range p.Products {
			if pp.Quantity != domain.DefaultProjectProductQuantity {
				return false
			}
		}
		return p.Products[0].ProductID == 3 && p.Products[1].ProductID == 4
	})).Return(int64(2), nil).Once()

	id, err := svc.Create(suite.ctx, dto.CreateProjectRequest{Name: "Loft", ProductIDs: []int64{3, 4}})

	suite.Require().NoError(err)
	suite.Equal(int64(2), id)
	repo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestProjectUpdate_WithoutProductIDsLeavesLinksAlone() {
	repo := new(mockEntityRepo[domain.Project])
	svc := services.NewProjectService(repo)

	stored := &domain.Project{ID: 2, Name: "Loft", Products: []domain.ProjectProduct{{ProductID: 3, ProductName: "Lamp", Quantity: 4}}}
	repo.On("FindByID", suite.ctx, int64(2)).Return(stored, nil).Once()
	repo.On("Update", suite.ctx, mock.MatchedBy(func(p *domain.Project) bool {
		return p.Name == "Loft II" && p.Products == nil
	})).Return(nil).Once()

	_, err := svc.Update(suite.ctx, 2, dto.UpdateProjectRequest{Name: ptr("Loft II")})

	suite.Require().NoError(err)
	repo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestProjectUpdate_EmptyProductIDsClearsLinks() {
	repo := new(mockEntityRepo[domain.Project])
	svc := services.NewProjectService(repo)

	stored := &domain.Project{ID: 2, Name: "Loft", Products: []domain.ProjectProduct{{ProductID: 3, Quantity: 1}}}
	repo.On("FindByID", suite.ctx, int64(2)).Return(stored, nil).Once()
	repo.On("Update", suite.ctx, mock.MatchedBy(func(p *domain.Project) bool {
		return p.Products != nil && len(p.Products) == 0
	})).Return(nil).Once()

	_, err := svc.Update(suite.ctx, 2, dto.UpdateProjectRequest{ProductIDs: []int64{}})

	suite.Require().NoError(err)
	repo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestTaskUpdate_EmptyDueDateClears() {
	repo := new(mockTaskRepo)
	svc := services.NewTaskService(repo, new(mockTaskSyncer), time.Second)

	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	repo.On("FindByID", suite.ctx, int64(3)).Return(&domain.Task{ID: 3, Name: "Measure", DueDate: &due}, nil).Once()
	repo.On("Update", suite.ctx, mock.MatchedBy(func(t *domain.Task) bool {
		return t.DueDate == nil && t.Name == "Measure"
	})).Return(nil).Once()

	updated, err := svc.Update(suite.ctx, 3, dto.UpdateTaskRequest{DueDate: dto.NullableValue("")})

	suite.Require().NoError(err)
	suite.Nil(updated.DueDate)
	repo.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestUpdate_NotFound() {
	repo := new(mockEntityRepo[domain.Room])
	svc := services.NewRoomService(repo)
	repo.On("FindByID", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.Update(suite.ctx, 99, dto.UpdateRoomRequest{Name: ptr("Den")})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	repo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *EntityServiceTestSuite) TestDelete_NotFound() {
	repo := new(mockEntityRepo[domain.Invoice])
	svc := services.NewInvoiceService(repo)
	repo.On("Delete", suite.ctx, int64(5)).Return(nil).Once()
	repo.On("Delete", suite.ctx, int64(5)).Return(apperrors.ErrNotFound).Once()

	suite.Require().NoError(svc.Delete(suite.ctx, 5))
	suite.ErrorIs(svc.Delete(suite.ctx, 5), apperrors.ErrNotFound)
}

func (suite *EntityServiceTestSuite) TestGet_RepoErrorPropagates() {
	repo := new(mockEntityRepo[domain.Employee])
	svc := services.NewEmployeeService(repo)
	dbErr := errors.New("connection reset")
	repo.On("FindByID", suite.ctx, int64(1)).Return(nil, dbErr).Once()

	_, err := svc.Get(suite.ctx, 1)

	suite.ErrorIs(err, dbErr)
}

func (suite *EntityServiceTestSuite) TestLeadCreate_RequiresStage() {
	repo := new(mockEntityRepo[domain.Lead])
	svc := services.NewLeadService(repo)

	_, err := svc.Create(suite.ctx, dto.CreateLeadRequest{Name: "Referral"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	repo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *EntityServiceTestSuite) TestLookupListsStages() {
	repo := new(mockLookupRepo)
	svc := services.NewLookupService(repo)
	repo.On("ListLeadStages", suite.ctx).Return([]domain.LeadStage{{ID: 1, Name: "New"}}, nil).Once()

	stages, err := svc.ListLeadStages(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal("New", stages[0].Name)
}
