package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/geology-api/internal/server"
)

// AuthService configures the Clerk SDK. Session verification itself happens
// in the auth middleware.
type AuthService struct {
	server    *server.Server
	staffRole string
}

func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server:    s,
		staffRole: s.Config.Auth.StaffRole,
	}
}

// IsStaff reports whether an organization role may write to the catalog.
func (a *AuthService) IsStaff(role string) bool {
	return role != "" && role == a.staffRole
}
