package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRow struct {
	id  int64
	err error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

// stubQuerier answers every QueryRow with row.
type stubQuerier struct {
	row     stubRow
	lastArg any
}

func (q *stubQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (q *stubQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (q *stubQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if len(args) > 0 {
		q.lastArg = args[0]
	}
	return q.row
}

func TestResolveRole_ReturnsID(t *testing.T) {
	q := &stubQuerier{row: stubRow{id: 7}}

	id, err := resolveRole(context.Background(), q, "Designer")

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "Designer", q.lastArg)
}

func TestResolveRole_NameTooLongIsValidation(t *testing.T) {
	q := &stubQuerier{row: stubRow{err: &pgconn.PgError{Code: "22001", TableName: "roles"}}}

	_, err := resolveRole(context.Background(), q, "a-role-name-well-beyond-the-sixty-four-characters-the-column-allows")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "Invalid value for role", apperrors.Message(err, ""))
}

func TestResolveRole_DriverErrorIsWrapped(t *testing.T) {
	connErr := errors.New("conn reset")
	q := &stubQuerier{row: stubRow{err: connErr}}

	_, err := resolveRole(context.Background(), q, "Designer")

	assert.ErrorIs(t, err, connErr)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
}
