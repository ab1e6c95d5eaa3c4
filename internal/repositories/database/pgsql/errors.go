package pgsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/schergr/interiordesign/internal/apperrors"
)

// SQLSTATE codes the repositories translate into application errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgInvalidText         = "22P02"
	pgNumericOutOfRange   = "22003"
	pgStringTooLong       = "22001"
)

// translateError maps driver errors onto the apperrors sentinels.
// entity names the row kind in client-facing messages, e.g. "Product".
func translateError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if col := constraintColumn(pgErr, "_key"); col != "" {
			return apperrors.Duplicatef("%s with this %s already exists", entity, col)
		}
		return apperrors.Duplicatef("%s already exists", entity)
	case pgForeignKeyViolation:
		if col := constraintColumn(pgErr, "_fkey"); col != "" {
			return apperrors.Validationf("Invalid %s: referenced row does not exist", col)
		}
		return apperrors.Validationf("Invalid reference on %s", strings.ToLower(entity))
	case pgNotNullViolation:
		if pgErr.ColumnName != "" {
			return apperrors.Validationf("%s is required", pgErr.ColumnName)
		}
		return apperrors.Validationf("Missing required field on %s", strings.ToLower(entity))
	case pgInvalidText, pgNumericOutOfRange, pgStringTooLong:
		return apperrors.Validationf("Invalid value for %s", strings.ToLower(entity))
	}
	return fmt.Errorf("database error on %s: %w", strings.ToLower(entity), err)
}

// constraintColumn extracts the column from a default constraint name
// such as "products_vendor_id_fkey" or "products_sku_key".
func constraintColumn(pgErr *pgconn.PgError, suffix string) string {
	name := pgErr.ConstraintName
	if name == "" || !strings.HasSuffix(name, suffix) {
		return ""
	}
	name = strings.TrimSuffix(name, suffix)
	if pgErr.TableName != "" {
		name = strings.TrimPrefix(name, pgErr.TableName+"_")
	}
	return name
}
