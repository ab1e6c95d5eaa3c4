package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/schergr/interiordesign/internal/apperrors"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/dto"
	"github.com/shopspring/decimal"
)

// entityService implements the CRUD service contract on top of one repository.
// build turns a create payload into a new entity; apply copies the fields
// present in an update payload onto a stored entity.
type entityService[T any, C any, U any] struct {
	BaseService
	entity string
	repo   portsrepo.EntityRepository[T]
	build  func(req C) (*T, error)
	apply  func(e *T, req U) error
}

func (s *entityService[T, C, U]) Create(ctx context.Context, req C) (int64, error) {
	e, err := s.build(req)
	if err != nil {
		return 0, err
	}
	return s.insert(ctx, e)
}

func (s *entityService[T, C, U]) insert(ctx context.Context, e *T) (int64, error) {
	id, err := s.repo.Create(ctx, e)
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to create "+s.entity)
		}
		return 0, err
	}
	s.LogDebug(ctx, s.entity+" created", slog.Int64("id", id))
	return id, nil
}

func (s *entityService[T, C, U]) Get(ctx context.Context, id int64) (*T, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find "+s.entity, slog.Int64("id", id))
		}
		return nil, err
	}
	return e, nil
}

func (s *entityService[T, C, U]) List(ctx context.Context) ([]T, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list "+s.entity)
		return nil, err
	}
	if list == nil {
		return []T{}, nil
	}
	return list, nil
}

// Update loads the entity, applies the present fields and writes every column back.
func (s *entityService[T, C, U]) Update(ctx context.Context, id int64, req U) (*T, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(e, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, e); err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to update "+s.entity, slog.Int64("id", id))
		}
		return nil, err
	}
	s.LogDebug(ctx, s.entity+" updated", slog.Int64("id", id))
	return e, nil
}

func (s *entityService[T, C, U]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete "+s.entity, slog.Int64("id", id))
		}
		return err
	}
	s.LogDebug(ctx, s.entity+" deleted", slog.Int64("id", id))
	return nil
}

func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrNotFound)
}

// setIfPresent overwrites *dst when the update carried a value.
func setIfPresent[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

// setNullable applies a nullable update field: a value overwrites, null clears.
func setNullable[V any](dst **V, src dto.Nullable[V]) {
	if src.Set {
		*dst = src.Ptr()
	}
}

// setRequiredRef applies an update to a reference that must stay set.
func setRequiredRef[V any](field string, dst **V, src dto.Nullable[V]) error {
	if !src.Set {
		return nil
	}
	if !src.Valid {
		return apperrors.Validationf("Invalid input: %s is required", field)
	}
	*dst = src.Ptr()
	return nil
}

// setDate applies a nullable date update; null and "" both clear it.
func setDate(field string, dst **time.Time, src dto.Nullable[string]) error {
	if !src.Set {
		return nil
	}
	t, err := parseDate(field, src.Ptr())
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

// setMoney applies a nullable amount update.
func setMoney(dst *decimal.NullDecimal, src dto.Nullable[decimal.Decimal]) {
	if src.Set {
		*dst = dto.ToNullDecimal(src.Ptr())
	}
}

// parseDate parses an optional YYYY-MM-DD payload value. An empty string yields nil.
func parseDate(field string, raw *string) (*time.Time, error) {
	t, err := dto.ParseDate(raw)
	if err != nil {
		return nil, apperrors.Validationf("Invalid input: %s must be a date (YYYY-MM-DD)", field)
	}
	return t, nil
}

// requireText rejects a missing or whitespace-only required field.
func requireText(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return apperrors.Validationf("Invalid input: %s is required", field)
	}
	return nil
}

// setTextIfPresent overwrites a required text column, refusing to blank it.
func setTextIfPresent(field string, dst *string, src *string) error {
	if src == nil {
		return nil
	}
	if err := requireText(field, *src); err != nil {
		return err
	}
	*dst = *src
	return nil
}
