package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/models"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func toDomainUser(m models.User) domain.User {
	return domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		RoleID:       m.RoleID,
	}
}

func (r *PgxUserRepository) findUser(ctx context.Context, filter string, arg any) (*domain.User, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, username, password_hash, role_id FROM users WHERE `+filter, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect user: %w", err)
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, "username = $1", username)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.findUser(ctx, "id = $1", userID)
}

// CreateUserWithRole looks up roleName, inserting it when missing, and stores the
// user under it. Both statements share one transaction.
func (r *PgxUserRepository) CreateUserWithRole(ctx context.Context, user *domain.User, roleName string) (int64, error) {
	var userID int64
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		roleID, err := resolveRole(ctx, tx, roleName)
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO users (username, password_hash, role_id) VALUES ($1, $2, $3) RETURNING id`,
			user.Username, user.PasswordHash, roleID,
		).Scan(&userID)
		if err != nil {
			return translateError(err, "User")
		}
		user.RoleID = &roleID
		return nil
	})
	if err != nil {
		return 0, err
	}
	user.ID = userID
	return userID, nil
}

// resolveRole returns the id of roleName, inserting the role when it is missing.
func resolveRole(ctx context.Context, q querier, roleName string) (int64, error) {
	var roleID int64
	// the no-op update makes RETURNING yield the id of an existing role too
	err := q.QueryRow(ctx, `
INSERT INTO roles (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, roleName).Scan(&roleID)
	if err != nil {
		return 0, translateError(err, "Role")
	}
	return roleID, nil
}
