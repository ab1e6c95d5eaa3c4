package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/models"
)

type PgxTaskRepository struct {
	*entityRepository[domain.Task, models.Task]
}

// Ensure PgxTaskRepository implements portsrepo.TaskRepositoryFacade
var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

func newPgxTaskRepository(pool *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{newEntityRepository(pool, tableSpec[domain.Task, models.Task]{
		entity: "Task",
		table:  "tasks",
		selectSQL: `
SELECT t.id, t.name, t.due_date, t.completed, t.contract_id, t.google_task_id
FROM tasks t`,
		idColumn:  "t.id",
		insertSQL: `INSERT INTO tasks (name, due_date, completed, contract_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		updateSQL: `UPDATE tasks SET name = $2, due_date = $3, completed = $4, contract_id = $5 WHERE id = $1`,
		insertArgs: func(t *domain.Task) []any {
			return []any{t.Name, t.DueDate, t.Completed, t.ContractID}
		},
		updateArgs: func(t *domain.Task) []any {
			return []any{t.ID, t.Name, t.DueDate, t.Completed, t.ContractID}
		},
		toDomain: func(m models.Task) domain.Task {
			return domain.Task{
				ID:           m.ID,
				Name:         m.Name,
				DueDate:      m.DueDate,
				Completed:    m.Completed,
				ContractID:   m.ContractID,
				GoogleTaskID: m.GoogleTaskID,
			}
		},
	})}
}

// SetGoogleTaskID records the remote id assigned by the external to-do service.
func (r *PgxTaskRepository) SetGoogleTaskID(ctx context.Context, taskID int64, remoteID string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE tasks SET google_task_id = $2 WHERE id = $1`, taskID, remoteID)
	if err != nil {
		return fmt.Errorf("failed to store google task id for task %d: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
