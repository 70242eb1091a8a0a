package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/deppfellow/geology-api/internal/errs"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/labstack/echo/v4"
)

// StaffChecker decides whether an organization role may write to the
// catalog.
type StaffChecker interface {
	IsStaff(role string) bool
}

type AuthMiddleware struct {
	server *server.Server
	staff  StaffChecker
}

func NewAuthMiddleware(s *server.Server, staff StaffChecker) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		staff:  staff,
	}
}

// RequireAuth verifies the Clerk session token from the Authorization
// header and stores the user id, role and permissions in the echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(auth.writeUnauthorized))))(
		func(c echo.Context) error {
			start := time.Now()

			claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
			if !ok {
				auth.server.Logger.Error().
					Str("function", "RequireAuth").
					Str("request_id", GetRequestID(c)).
					Dur("duration", time.Since(start)).
					Msg("could not get session claims from context")

				return errs.NewUnauthorizedError("Unauthorized", false)
			}

			c.Set(UserIDKey, claims.Subject)
			c.Set(UserRoleKey, claims.ActiveOrganizationRole)
			c.Set("permissions", claims.Claims.ActiveOrganizationPermissions)

			auth.server.Logger.Info().
				Str("function", "RequireAuth").
				Str("user_id", claims.Subject).
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("user authenticated successfully")

			return next(c)
		})
}

// RequireStaff rejects authenticated users whose role is not the staff
// role. It must run after RequireAuth.
func (auth *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(UserRoleKey).(string)
		if !auth.staff.IsStaff(role) {
			GetLogger(c).Warn().
				Str("function", "RequireStaff").
				Str("user_id", GetUserID(c)).
				Str("user_role", role).
				Msg("staff role required")

			return errs.NewForbiddenError("You do not have permission to perform this action.", false)
		}
		return next(c)
	}
}

// Staff chains RequireAuth and RequireStaff for catalog write routes.
func (auth *AuthMiddleware) Staff() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{auth.RequireAuth, auth.RequireStaff}
}

func (auth *AuthMiddleware) writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	if err := json.NewEncoder(w).Encode(errs.NewUnauthorizedError("Unauthorized", false)); err != nil {
		auth.server.Logger.Error().
			Err(err).
			Str("function", "RequireAuth").
			Msg("failed to write JSON response")
		return
	}

	auth.server.Logger.Warn().
		Str("function", "RequireAuth").
		Str("path", r.URL.Path).
		Msg("missing or invalid session token")
}
