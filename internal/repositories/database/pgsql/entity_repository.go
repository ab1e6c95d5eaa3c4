package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/apperrors"
)

// tableSpec describes how an entity T is read from and written to its table.
// M is the row model scanned from selectSQL.
type tableSpec[T any, M any] struct {
	entity string
	table  string

	// selectSQL selects every model column, joining display names. It must not
	// carry WHERE or ORDER BY clauses; idColumn is the qualified key column.
	selectSQL string
	idColumn  string

	// insertSQL ends with RETURNING id; updateSQL takes the id as $1.
	insertSQL  string
	updateSQL  string
	insertArgs func(*T) []any
	updateArgs func(*T) []any

	toDomain func(M) T
}

// entityRepository implements the CRUD repository contract for one table.
type entityRepository[T any, M any] struct {
	BaseRepository
	spec tableSpec[T, M]
}

func newEntityRepository[T any, M any](pool *pgxpool.Pool, spec tableSpec[T, M]) *entityRepository[T, M] {
	return &entityRepository[T, M]{
		BaseRepository: BaseRepository{Pool: pool},
		spec:           spec,
	}
}

func (r *entityRepository[T, M]) query(ctx context.Context, q querier, filter string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, r.spec.selectSQL+filter, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s rows: %w", r.spec.table, err)
	}
	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, fmt.Errorf("failed to collect %s rows: %w", r.spec.table, err)
	}
	out := make([]T, len(models))
	for i, m := range models {
		out[i] = r.spec.toDomain(m)
	}
	return out, nil
}

func (r *entityRepository[T, M]) findByID(ctx context.Context, q querier, id int64) (*T, error) {
	found, err := r.query(ctx, q, " WHERE "+r.spec.idColumn+" = $1", id)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &found[0], nil
}

func (r *entityRepository[T, M]) FindByID(ctx context.Context, id int64) (*T, error) {
	return r.findByID(ctx, r.Pool, id)
}

func (r *entityRepository[T, M]) List(ctx context.Context) ([]T, error) {
	return r.query(ctx, r.Pool, " ORDER BY "+r.spec.idColumn)
}

func (r *entityRepository[T, M]) create(ctx context.Context, q querier, entity *T) (int64, error) {
	var id int64
	if err := q.QueryRow(ctx, r.spec.insertSQL, r.spec.insertArgs(entity)...).Scan(&id); err != nil {
		return 0, translateError(err, r.spec.entity)
	}
	return id, nil
}

func (r *entityRepository[T, M]) Create(ctx context.Context, entity *T) (int64, error) {
	return r.create(ctx, r.Pool, entity)
}

func (r *entityRepository[T, M]) update(ctx context.Context, q querier, entity *T) error {
	tag, err := q.Exec(ctx, r.spec.updateSQL, r.spec.updateArgs(entity)...)
	if err != nil {
		return translateError(err, r.spec.entity)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *entityRepository[T, M]) Update(ctx context.Context, entity *T) error {
	return r.update(ctx, r.Pool, entity)
}

func (r *entityRepository[T, M]) Delete(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, "DELETE FROM "+r.spec.table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", r.spec.table, id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
