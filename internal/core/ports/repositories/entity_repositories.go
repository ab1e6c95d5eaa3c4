package repositories

import "context"

// EntityReader defines read operations shared by every CRUD table.
type EntityReader[T any] interface {
	// FindByID retrieves a single row with its display names resolved.
	// Returns apperrors.ErrNotFound when the row does not exist.
	FindByID(ctx context.Context, id int64) (*T, error)

	// List retrieves every row ordered by id.
	List(ctx context.Context) ([]T, error)
}

// EntityWriter defines write operations shared by every CRUD table.
type EntityWriter[T any] interface {
	// Create inserts a new row and returns its id.
	Create(ctx context.Context, entity *T) (int64, error)

	// Update overwrites every stored column of an existing row.
	Update(ctx context.Context, entity *T) error

	// Delete removes a row. Returns apperrors.ErrNotFound when nothing was deleted.
	Delete(ctx context.Context, id int64) error
}

// EntityRepository combines read and write access to one table.
type EntityRepository[T any] interface {
	EntityReader[T]
	EntityWriter[T]
}
