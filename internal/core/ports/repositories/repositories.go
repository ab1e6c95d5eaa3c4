package repositories

import (
	"context"

	"github.com/schergr/interiordesign/internal/core/domain"
)

type VendorRepositoryFacade interface {
	EntityRepository[domain.Vendor]
}

type DocumentRepositoryFacade interface {
	EntityRepository[domain.Document]
}

type ProductRepositoryFacade interface {
	EntityRepository[domain.Product]
}

type InventoryRepositoryFacade interface {
	EntityRepository[domain.InventoryRecord]
}

type EmployeeRepositoryFacade interface {
	EntityRepository[domain.Employee]
}

type ClientRepositoryFacade interface {
	EntityRepository[domain.Client]
}

// ProjectRepositoryFacade persists projects together with their product links.
// Create inserts one link per entry of Project.Products; Update replaces the
// links when Project.Products is non-nil. Both run in a single transaction.
type ProjectRepositoryFacade interface {
	EntityRepository[domain.Project]
}

type LeadRepositoryFacade interface {
	EntityRepository[domain.Lead]
}

type ContractRepositoryFacade interface {
	EntityRepository[domain.Contract]
}

// TaskRepositoryFacade persists tasks and the id assigned by the external to-do service.
type TaskRepositoryFacade interface {
	EntityRepository[domain.Task]

	// SetGoogleTaskID records the remote id of a synced task.
	SetGoogleTaskID(ctx context.Context, taskID int64, remoteID string) error
}

type RoomRepositoryFacade interface {
	EntityRepository[domain.Room]
}

type ItemRepositoryFacade interface {
	EntityRepository[domain.Item]
}

type ProposalRepositoryFacade interface {
	EntityRepository[domain.Proposal]
}

type InvoiceRepositoryFacade interface {
	EntityRepository[domain.Invoice]
}

type NoteRepositoryFacade interface {
	EntityRepository[domain.Note]
}

// UserRepositoryFacade defines persistence for user accounts and their roles.
type UserRepositoryFacade interface {
	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// CreateUserWithRole finds or creates the named role and inserts the user, in one transaction.
	// Returns apperrors.ErrDuplicate when the username is taken.
	CreateUserWithRole(ctx context.Context, user *domain.User, roleName string) (int64, error)
}

// LookupRepositoryFacade reads and seeds the reference tables.
type LookupRepositoryFacade interface {
	ListLeadStages(ctx context.Context) ([]domain.LeadStage, error)
	ListContractStatuses(ctx context.Context) ([]domain.ContractStatus, error)

	// CountRows returns the number of rows in a reference table.
	CountRows(ctx context.Context, table domain.LookupTable) (int, error)

	// InsertNames adds one row per name to a reference table.
	InsertNames(ctx context.Context, table domain.LookupTable, names []string) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	VendorRepo    VendorRepositoryFacade
	DocumentRepo  DocumentRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	InventoryRepo InventoryRepositoryFacade
	EmployeeRepo  EmployeeRepositoryFacade
	ClientRepo    ClientRepositoryFacade
	ProjectRepo   ProjectRepositoryFacade
	LeadRepo      LeadRepositoryFacade
	ContractRepo  ContractRepositoryFacade
	TaskRepo      TaskRepositoryFacade
	RoomRepo      RoomRepositoryFacade
	ItemRepo      ItemRepositoryFacade
	ProposalRepo  ProposalRepositoryFacade
	InvoiceRepo   InvoiceRepositoryFacade
	NoteRepo      NoteRepositoryFacade
	UserRepo      UserRepositoryFacade
	LookupRepo    LookupRepositoryFacade
}
