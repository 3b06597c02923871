package ports

import (
	"context"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// AuthService is the single entry point for credential-based state
// transitions and the authority for what counts as "loading".
type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Signup(ctx context.Context, email, name, password string) error
	Logout(ctx context.Context)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error

	Current() (domain.Session, bool)
	IsAuthenticated() bool
	IsAdmin() bool
	Loading() bool
}

// AccountDirectory is the fixed set of accounts the auth service consults.
// Email lookups are exact and case-sensitive.
type AccountDirectory interface {
	FindByEmail(email string) (*domain.Account, error)
	All() []domain.Account
}

// SessionStore owns the current session and its persisted copy.
type SessionStore interface {
	// Load adopts a previously persisted session if one exists and parses.
	// Absent or malformed data leaves the store empty; Load never fails.
	Load(ctx context.Context)
	Set(ctx context.Context, s domain.Session) error
	Clear(ctx context.Context) error
	Current() (domain.Session, bool)
}
