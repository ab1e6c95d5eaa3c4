package services_test

import (
	"context"
	"time"

	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// mockEntityRepo satisfies every single-table repository facade.
type mockEntityRepo[T any] struct {
	mock.Mock
}

func (m *mockEntityRepo[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockEntityRepo[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockEntityRepo[T]) Create(ctx context.Context, entity *T) (int64, error) {
	args := m.Called(ctx, entity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEntityRepo[T]) Update(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockEntityRepo[T]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTaskRepo struct {
	mockEntityRepo[domain.Task]
}

func (m *mockTaskRepo) SetGoogleTaskID(ctx context.Context, taskID int64, remoteID string) error {
	args := m.Called(ctx, taskID, remoteID)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) CreateUserWithRole(ctx context.Context, user *domain.User, roleName string) (int64, error) {
	args := m.Called(ctx, user, roleName)
	return args.Get(0).(int64), args.Error(1)
}

type mockLookupRepo struct {
	mock.Mock
}

func (m *mockLookupRepo) ListLeadStages(ctx context.Context) ([]domain.LeadStage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeadStage), args.Error(1)
}

func (m *mockLookupRepo) ListContractStatuses(ctx context.Context) ([]domain.ContractStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContractStatus), args.Error(1)
}

func (m *mockLookupRepo) CountRows(ctx context.Context, table domain.LookupTable) (int, error) {
	args := m.Called(ctx, table)
	return args.Int(0), args.Error(1)
}

func (m *mockLookupRepo) InsertNames(ctx context.Context, table domain.LookupTable, names []string) error {
	args := m.Called(ctx, table, names)
	return args.Error(0)
}

type mockTaskSyncer struct {
	mock.Mock
}

func (m *mockTaskSyncer) Sync(ctx context.Context, name string, due *time.Time) domain.TaskSyncResult {
	args := m.Called(ctx, name, due)
	return args.Get(0).(domain.TaskSyncResult)
}

func ptr[V any](v V) *V {
	return &v
}
