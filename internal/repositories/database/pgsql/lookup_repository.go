package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/models"
)

// PgxLookupRepository reads and seeds the reference tables.
type PgxLookupRepository struct {
	BaseRepository
}

func newPgxLookupRepository(pool *pgxpool.Pool) portsrepo.LookupRepositoryFacade {
	return &PgxLookupRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LookupRepositoryFacade = (*PgxLookupRepository)(nil)

func (r *PgxLookupRepository) listLookup(ctx context.Context, table domain.LookupTable) ([]models.Lookup, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name FROM `+pgx.Identifier{string(table)}.Sanitize()+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	lookups, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Lookup])
	if err != nil {
		return nil, fmt.Errorf("failed to collect %s rows: %w", table, err)
	}
	return lookups, nil
}

func (r *PgxLookupRepository) ListLeadStages(ctx context.Context) ([]domain.LeadStage, error) {
	lookups, err := r.listLookup(ctx, domain.LookupLeadStages)
	if err != nil {
		return nil, err
	}
	stages := make([]domain.LeadStage, len(lookups))
	for i, l := range lookups {
		stages[i] = domain.LeadStage{ID: l.ID, Name: l.Name}
	}
	return stages, nil
}

func (r *PgxLookupRepository) ListContractStatuses(ctx context.Context) ([]domain.ContractStatus, error) {
	lookups, err := r.listLookup(ctx, domain.LookupContractStatuses)
	if err != nil {
		return nil, err
	}
	statuses := make([]domain.ContractStatus, len(lookups))
	for i, l := range lookups {
		statuses[i] = domain.ContractStatus{ID: l.ID, Name: l.Name}
	}
	return statuses, nil
}

func (r *PgxLookupRepository) CountRows(ctx context.Context, table domain.LookupTable) (int, error) {
	var n int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+pgx.Identifier{string(table)}.Sanitize()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// InsertNames adds one row per name in a single transaction.
func (r *PgxLookupRepository) InsertNames(ctx context.Context, table domain.LookupTable, names []string) error {
	query := `INSERT INTO ` + pgx.Identifier{string(table)}.Sanitize() + ` (name) VALUES ($1)`
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		for _, name := range names {
			if _, err := tx.Exec(ctx, query, name); err != nil {
				return fmt.Errorf("failed to insert %q into %s: %w", name, table, err)
			}
		}
		return nil
	})
}
