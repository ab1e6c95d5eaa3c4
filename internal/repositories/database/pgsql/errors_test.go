package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantIs      error
		wantMessage string
	}{
		{
			name:   "no rows",
			err:    fmt.Errorf("scan: %w", pgx.ErrNoRows),
			wantIs: apperrors.ErrNotFound,
		},
		{
			name:        "unique violation names the column",
			err:         &pgconn.PgError{Code: "23505", TableName: "products", ConstraintName: "products_sku_key"},
			wantIs:      apperrors.ErrDuplicate,
			wantMessage: "Product with this sku already exists",
		},
		{
			name:        "unknown foreign key",
			err:         &pgconn.PgError{Code: "23503", TableName: "products", ConstraintName: "products_vendor_id_fkey"},
			wantIs:      apperrors.ErrValidation,
			wantMessage: "Invalid vendor_id: referenced row does not exist",
		},
		{
			name:        "not null",
			err:         &pgconn.PgError{Code: "23502", ColumnName: "name"},
			wantIs:      apperrors.ErrValidation,
			wantMessage: "name is required",
		},
		{
			name:   "numeric out of range",
			err:    &pgconn.PgError{Code: "22003"},
			wantIs: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, "Product")
			assert.ErrorIs(t, got, tt.wantIs)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, apperrors.Message(got, ""))
			}
		})
	}
}

func TestTranslateError_PassesThroughUnknownErrors(t *testing.T) {
	boom := errors.New("connection reset")
	got := translateError(boom, "Vendor")
	assert.ErrorIs(t, got, boom)
	assert.False(t, errors.Is(got, apperrors.ErrValidation))
	assert.Nil(t, translateError(nil, "Vendor"))
}
