package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/schergr/interiordesign/internal/metrics"
	"github.com/schergr/interiordesign/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserAuth struct {
	mock.Mock
}

func (m *mockUserAuth) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserAuth) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockTokens struct {
	mock.Mock
}

func (m *mockTokens) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokens) ParseAccessToken(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(users *mockUserAuth, tokens *mockTokens, enabled bool) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(users, tokens, metrics.New("test"), enabled))
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := middleware.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "authenticated": ok})
	})
	return r
}

func TestAuthMiddleware_Basic(t *testing.T) {
	users := new(mockUserAuth)
	users.On("AuthenticateUser", mock.Anything, "alice", "pw").Return(&domain.User{ID: 7, Username: "alice"}, nil).Once()
	r := newAuthRouter(users, new(mockTokens), true)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.SetBasicAuth("alice", "pw")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7,"authenticated":true}`, rec.Body.String())
	users.AssertExpectations(t)
}

func TestAuthMiddleware_BasicWrongPassword(t *testing.T) {
	users := new(mockUserAuth)
	users.On("AuthenticateUser", mock.Anything, "alice", "nope").Return(nil, apperrors.ErrUnauthorized).Once()
	r := newAuthRouter(users, new(mockTokens), true)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.SetBasicAuth("alice", "nope")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}

func TestAuthMiddleware_Bearer(t *testing.T) {
	tokens := new(mockTokens)
	tokens.On("ParseAccessToken", mock.Anything, "tok").Return(int64(3), nil).Once()
	users := new(mockUserAuth)
	users.On("GetUserByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3, Username: "dan"}, nil).Once()
	r := newAuthRouter(users, tokens, true)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":3,"authenticated":true}`, rec.Body.String())
	users.AssertExpectations(t)
}

func TestAuthMiddleware_BearerForDeletedUser(t *testing.T) {
	tokens := new(mockTokens)
	tokens.On("ParseAccessToken", mock.Anything, "tok").Return(int64(9), nil).Once()
	users := new(mockUserAuth)
	users.On("GetUserByID", mock.Anything, int64(9)).Return(nil, apperrors.ErrNotFound).Once()
	r := newAuthRouter(users, tokens, true)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token subject"}`, rec.Body.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newAuthRouter(new(mockUserAuth), new(mockTokens), true)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	r := newAuthRouter(new(mockUserAuth), new(mockTokens), false)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":0,"authenticated":false}`, rec.Body.String())
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(lim))
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestRequestTimeout_SetsDeadline(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestTimeout(time.Second))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{"deadline": ok})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.JSONEq(t, `{"deadline":true}`, rec.Body.String())
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	requestID := rec.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)
	assert.Contains(t, buf.String(), "inside handler")
	assert.Contains(t, buf.String(), `"status":204`)
}

func TestMetricsMiddleware_CountsByRoute(t *testing.T) {
	m := metrics.New("mw")
	r := gin.New()
	r.Use(middleware.MetricsMiddleware(m))
	r.GET("/vendors/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vendors/9", nil))

	body := httptest.NewRecorder()
	m.Handler().ServeHTTP(body, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, body.Body.String(), `mw_api_errors_total{method="GET",path="/vendors/:id",status="404"} 1`)
}
