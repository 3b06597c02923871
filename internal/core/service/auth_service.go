package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
)

// AuthService implements login, signup, logout, and the password-reset flow
// against a fixed account directory. There is no upstream identity provider:
// a configurable delay stands in for the network round trip.
//
// Overlapping calls are serialized by a mutex, so a second operation waits for
// the one in flight instead of racing it for the session store.
type AuthService struct {
	directory ports.AccountDirectory
	sessions  ports.SessionStore
	activity  ports.ActivitySink
	latency   time.Duration
	log       zerolog.Logger

	mu      sync.Mutex
	loading atomic.Bool
}

// NewAuthService wires the auth service. activity may be nil when no trail is
// wanted. latency <= 0 disables the simulated round trip.
func NewAuthService(
	directory ports.AccountDirectory,
	sessions ports.SessionStore,
	activity ports.ActivitySink,
	latency time.Duration,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		directory: directory,
		sessions:  sessions,
		activity:  activity,
		latency:   latency,
		log:       log,
	}
}

// begin serializes the operation and raises the loading flag. The returned
// func must run on every exit path.
func (s *AuthService) begin() func() {
	s.mu.Lock()
	s.loading.Store(true)
	return func() {
		s.loading.Store(false)
		s.mu.Unlock()
	}
}

// simulateRoundTrip stands in for the upstream request. It intentionally
// ignores ctx: once initiated, an operation runs to completion.
func (s *AuthService) simulateRoundTrip() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

func (s *AuthService) record(kind domain.ActivityKind, email string) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(domain.ActivityEvent{
		Kind:      kind,
		Email:     email,
		Timestamp: time.Now().UTC(),
	})
}

// Login authenticates email+password against the directory. On success the
// derived session (account minus credential) becomes the current session and
// is persisted. On failure the existing session is left untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	done := s.begin()
	defer done()

	s.simulateRoundTrip()

	acc, err := s.directory.FindByEmail(email)
	if err != nil {
		// An unknown email and a wrong password are indistinguishable to
		// the caller.
		s.log.Info().Str("email", email).Msg("login rejected")
		s.record(domain.ActivityLoginFailed, email)
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		s.log.Info().Str("email", email).Msg("login rejected")
		s.record(domain.ActivityLoginFailed, email)
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	sess := domain.NewSession(acc)
	if err := s.sessions.Set(ctx, sess); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to persist session")
		return domain.Session{}, err
	}

	s.log.Info().Str("email", sess.Email).Str("role", string(sess.Role)).Msg("login succeeded")
	s.record(domain.ActivityLogin, email)
	return sess, nil
}

// Signup rejects emails already present in the directory. A fresh email is
// acknowledged as registered, but no account is created and no session is
// established: the directory is fixed seed data.
func (s *AuthService) Signup(ctx context.Context, email, name, password string) error {
	done := s.begin()
	defer done()

	s.simulateRoundTrip()

	if _, err := s.directory.FindByEmail(email); err == nil {
		return domain.ErrEmailAlreadyRegistered
	}

	s.log.Info().Str("email", email).Str("name", name).Msg("signup acknowledged")
	s.record(domain.ActivitySignup, email)
	return nil
}

// Logout destroys the current session. It has no failure mode: a storage
// error is logged and the in-memory session is gone either way.
func (s *AuthService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Current()
	if err := s.sessions.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to delete persisted session")
	}
	if ok {
		s.log.Info().Str("email", sess.Email).Msg("logged out")
		s.record(domain.ActivityLogout, sess.Email)
	}
}

// ForgotPassword verifies the email belongs to a known account. No reset
// token is generated or stored; success is the only observable effect.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	done := s.begin()
	defer done()

	s.simulateRoundTrip()

	if _, err := s.directory.FindByEmail(email); err != nil {
		return domain.ErrAccountNotFound
	}

	s.log.Info().Str("email", email).Msg("password reset requested")
	s.record(domain.ActivityForgotPassword, email)
	return nil
}

// ResetPassword accepts any non-empty token and acknowledges success. The
// token is not validated against a store and no password is mutated.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	done := s.begin()
	defer done()

	s.simulateRoundTrip()

	if token == "" {
		return domain.ErrResetTokenRequired
	}

	s.log.Info().Msg("password reset acknowledged")
	s.record(domain.ActivityResetPassword, "")
	return nil
}

// Current returns the session owned by the session store, if any.
func (s *AuthService) Current() (domain.Session, bool) {
	return s.sessions.Current()
}

// IsAuthenticated reports whether a session is present.
func (s *AuthService) IsAuthenticated() bool {
	_, ok := s.sessions.Current()
	return ok
}

// IsAdmin reports whether the current session carries the ADMIN role.
func (s *AuthService) IsAdmin() bool {
	sess, ok := s.sessions.Current()
	return ok && sess.IsAdmin()
}

// Loading reports whether an auth operation is in flight.
func (s *AuthService) Loading() bool {
	return s.loading.Load()
}
