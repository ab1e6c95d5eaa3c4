package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/apperrors"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
	"github.com/schergr/interiordesign/internal/middleware"
)

// crudHandler serves the create/list/get/update/delete surface of one entity.
type crudHandler[T any, C any, U any, R any] struct {
	entity     string
	svc        portssvc.EntitySvc[T, C, U]
	toResponse func(*T) R
	toList     func([]T) []R
}

func newCRUDHandler[T any, C any, U any, R any](
	entity string,
	svc portssvc.EntitySvc[T, C, U],
	toResponse func(*T) R,
	toList func([]T) []R,
) *crudHandler[T, C, U, R] {
	return &crudHandler[T, C, U, R]{entity: entity, svc: svc, toResponse: toResponse, toList: toList}
}

func (h *crudHandler[T, C, U, R]) create(c *gin.Context) {
	var req C
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create", h.entity)
		return
	}
	c.JSON(http.StatusCreated, dto.IDResponse{ID: id})
}

func (h *crudHandler[T, C, U, R]) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "list", h.entity)
		return
	}
	c.JSON(http.StatusOK, h.toList(items))
}

func (h *crudHandler[T, C, U, R]) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve", h.entity)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(item))
}

func (h *crudHandler[T, C, U, R]) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req U
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "update", h.entity)
		return
	}
	c.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

func (h *crudHandler[T, C, U, R]) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete", h.entity)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter, answering 400 when it is not a positive integer.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid id: must be a positive integer"})
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the request body, answering 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.DescribeBindingError(err)})
		return false
	}
	return true
}

// respondError maps a service error onto its HTTP status. Unexpected errors
// are logged and answered with "Failed to <verb> <entity>".
func respondError(c *gin.Context, err error, verb, entity string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: entity + " not found"})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Rejected "+verb+" "+strings.ToLower(entity), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperrors.Message(err, "Invalid input")})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: apperrors.Message(err, "Unauthorized")})
	default:
		msg := "Failed to " + verb + " " + strings.ToLower(entity)
		attrs := []any{slog.String("error", err.Error())}
		if errors.Is(err, context.DeadlineExceeded) {
			attrs = append(attrs, slog.Bool("timeout", true))
		}
		logger.Error(msg, attrs...)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
	}
}
