package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/geology-api/internal/config"
	"github.com/deppfellow/geology-api/internal/errs"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleSet map[string]bool

func (r roleSet) IsStaff(role string) bool { return r[role] }

func testServer(cfg *config.Config) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{Config: cfg, Logger: &logger}
}

func newEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func ok(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	}, RequestID())

	t.Run("reuses incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("generates one when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})
}

func TestRequireStaff(t *testing.T) {
	s := testServer(&config.Config{})
	auth := NewAuthMiddleware(s, roleSet{"org:admin": true})
	e := newEcho(s)

	withRole := func(role string) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Set(UserIDKey, "user_1")
				c.Set(UserRoleKey, role)
				return next(c)
			}
		}
	}
	e.POST("/admin", ok, withRole("org:admin"), auth.RequireStaff)
	e.POST("/member", ok, withRole("org:member"), auth.RequireStaff)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/member", nil))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You do not have permission to perform this action.", decodeError(t, rec).Message)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	s := testServer(&config.Config{})
	auth := NewAuthMiddleware(s, roleSet{})
	e := newEcho(s)
	e.POST("/categories", ok, auth.Staff()...)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/categories", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)
}

func TestRateLimit(t *testing.T) {
	s := testServer(&config.Config{Server: config.ServerConfig{RateLimit: 1}})
	e := newEcho(s)
	e.POST("/contact", ok, NewRateLimitMiddleware(s).Limit())

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < rateLimitBurst; i++ {
		require.Equal(t, http.StatusOK, send("10.0.0.1"), "request %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRateLimit_Disabled(t *testing.T) {
	s := testServer(&config.Config{})
	e := newEcho(s)
	e.POST("/orders", ok, NewRateLimitMiddleware(s).Limit())

	for i := 0; i < rateLimitBurst*3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	s := testServer(&config.Config{})
	e := newEcho(s)
	e.GET("/field", func(c echo.Context) error {
		return errs.NewBadRequestError("Validation failed", true, nil,
			[]errs.FieldError{{Field: "slug", Error: "must be a valid slug"}}, nil)
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("connection reset")
	})

	t.Run("http error keeps its shape", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/field", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.True(t, body.Override)
		assert.Equal(t, []errs.FieldError{{Field: "slug", Error: "must be a valid slug"}}, body.Errors)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Route not found", decodeError(t, rec).Message)
	})

	t.Run("plain errors become 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", decodeError(t, rec).Code)
	})

	t.Run("head has no body", func(t *testing.T) {
		e.HEAD("/field", func(c echo.Context) error {
			return errs.NewNotFoundError("Category not found", false, nil)
		})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/field", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
