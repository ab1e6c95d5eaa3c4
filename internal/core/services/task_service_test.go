package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/core/services"
	"github.com/schergr/interiordesign/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TaskServiceTestSuite struct {
	suite.Suite
	repo    *mockTaskRepo
	syncer  *mockTaskSyncer
	service portssvc.TaskSvcFacade
	ctx     context.Context
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.repo = new(mockTaskRepo)
	suite.syncer = new(mockTaskSyncer)
	suite.service = services.NewTaskService(suite.repo, suite.syncer, time.Second)
	suite.ctx = context.Background()
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}

func (suite *TaskServiceTestSuite) TestCreate_SyncedStoresRemoteID() {
	suite.repo.On("Create", suite.ctx, mock.AnythingOfType("*domain.Task")).Return(int64(12), nil).Once()
	suite.syncer.On("Sync", mock.Anything, "Order fabric", mock.MatchedBy(func(due *time.Time) bool {
		return due != nil && due.Format(dto.DateLayout) == "2026-03-01"
	})).Return(domain.SyncedTask("g-1")).Once()
	suite.repo.On("SetGoogleTaskID", mock.Anything, int64(12), "g-1").Return(nil).Once()

	id, err := suite.service.Create(suite.ctx, dto.CreateTaskRequest{Name: "Order fabric", DueDate: ptr("2026-03-01")})

	suite.Require().NoError(err)
	suite.Equal(int64(12), id)
	suite.repo.AssertExpectations(suite.T())
	suite.syncer.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreate_SkippedLeavesRemoteIDUnset() {
	suite.repo.On("Create", suite.ctx, mock.AnythingOfType("*domain.Task")).Return(int64(13), nil).Once()
	suite.syncer.On("Sync", mock.Anything, "Call client", (*time.Time)(nil)).Return(domain.SkippedTask()).Once()

	id, err := suite.service.Create(suite.ctx, dto.CreateTaskRequest{Name: "Call client"})

	suite.Require().NoError(err)
	suite.Equal(int64(13), id)
	suite.repo.AssertNotCalled(suite.T(), "SetGoogleTaskID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestCreate_SyncFailureStillSucceeds() {
	suite.repo.On("Create", suite.ctx, mock.AnythingOfType("*domain.Task")).Return(int64(14), nil).Once()
	suite.syncer.On("Sync", mock.Anything, "Pick samples", (*time.Time)(nil)).
		Return(domain.FailedTask(errors.New("403 forbidden"))).Once()

	id, err := suite.service.Create(suite.ctx, dto.CreateTaskRequest{Name: "Pick samples"})

	suite.Require().NoError(err)
	suite.Equal(int64(14), id)
	suite.repo.AssertNotCalled(suite.T(), "SetGoogleTaskID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestCreate_StoringRemoteIDFailureStillSucceeds() {
	suite.repo.On("Create", suite.ctx, mock.AnythingOfType("*domain.Task")).Return(int64(15), nil).Once()
	suite.syncer.On("Sync", mock.Anything, "Ship", (*time.Time)(nil)).Return(domain.SyncedTask("g-2")).Once()
	suite.repo.On("SetGoogleTaskID", mock.Anything, int64(15), "g-2").Return(errors.New("conn closed")).Once()

	id, err := suite.service.Create(suite.ctx, dto.CreateTaskRequest{Name: "Ship"})

	suite.Require().NoError(err)
	suite.Equal(int64(15), id)
}

func (suite *TaskServiceTestSuite) TestCreate_SyncOutlivesCanceledRequest() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite.repo.On("Create", ctx, mock.AnythingOfType("*domain.Task")).Return(int64(16), nil).Once()
	suite.syncer.On("Sync", mock.MatchedBy(func(c context.Context) bool {
		_, hasDeadline := c.Deadline()
		return c.Err() == nil && hasDeadline
	}), "Late", (*time.Time)(nil)).Return(domain.SkippedTask()).Once()

	_, err := suite.service.Create(ctx, dto.CreateTaskRequest{Name: "Late"})

	suite.Require().NoError(err)
	suite.syncer.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreate_InsertFailureSkipsSync() {
	suite.repo.On("Create", suite.ctx, mock.AnythingOfType("*domain.Task")).Return(int64(0), errors.New("db down")).Once()

	_, err := suite.service.Create(suite.ctx, dto.CreateTaskRequest{Name: "Nope"})

	suite.Require().Error(err)
	suite.syncer.AssertNotCalled(suite.T(), "Sync", mock.Anything, mock.Anything, mock.Anything)
}
