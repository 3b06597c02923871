package domain

import "errors"

// Role is the coarse permission tier attached to every account.
// It is a closed set: anything other than ADMIN or USER is rejected.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailAlreadyRegistered = errors.New("email already registered")
var ErrAccountNotFound = errors.New("no account found with this email")
var ErrResetTokenRequired = errors.New("reset token required")
var ErrForbidden = errors.New("access forbidden")

// Account is a directory entry capable of authenticating a session.
// PasswordHash is a bcrypt digest; the plaintext never leaves the seed loader.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Session is the authenticated identity currently active in the portal:
// an Account minus its credential.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// NewSession derives a Session from an authenticated account.
func NewSession(a *Account) Session {
	return Session{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}

// IsAdmin reports whether the session carries the ADMIN role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
