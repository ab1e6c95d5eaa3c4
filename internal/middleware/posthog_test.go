package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestRouteEventName(t *testing.T) {
	assert.Equal(t, "get_vendors", routeEventName(http.MethodGet, "/vendors"))
	assert.Equal(t, "put_vendors_id", routeEventName(http.MethodPut, "/vendors/:id"))
	assert.Equal(t, "get_leadstages", routeEventName(http.MethodGet, "/leadstages"))
}

func TestPosthogMiddleware_DisabledPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := utils.InitializePosthogClient("", "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := gin.New()
	r.Use(PosthogMiddleware(client))
	r.GET("/vendors", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vendors", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
