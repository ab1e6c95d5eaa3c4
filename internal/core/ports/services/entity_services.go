package services

import "context"

// EntitySvc defines the CRUD operations every entity service exposes.
// C is the create payload and U the partial update payload.
type EntitySvc[T any, C any, U any] interface {
	// Create validates req, stores the entity and returns its id.
	Create(ctx context.Context, req C) (int64, error)

	// Get retrieves one entity. Returns apperrors.ErrNotFound when absent.
	Get(ctx context.Context, id int64) (*T, error)

	// List retrieves every entity ordered by id.
	List(ctx context.Context) ([]T, error)

	// Update applies the fields present in req to an existing entity.
	Update(ctx context.Context, id int64, req U) (*T, error)

	// Delete removes an entity. Returns apperrors.ErrNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
