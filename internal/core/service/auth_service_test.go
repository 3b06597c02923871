package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

type stubDirectory struct {
	accounts map[string]*domain.Account
}

func newStubDirectory(t *testing.T) *stubDirectory {
	t.Helper()
	d := &stubDirectory{accounts: make(map[string]*domain.Account)}
	d.add(t, "1", "admin@skylines.com", "Admin User", "admin123", domain.RoleAdmin)
	d.add(t, "2", "user@example.com", "Regular User", "user123", domain.RoleUser)
	return d
}

func (d *stubDirectory) add(t *testing.T, id, email, name, password string, role domain.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	d.accounts[email] = &domain.Account{
		ID:           id,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
}

func (d *stubDirectory) FindByEmail(email string) (*domain.Account, error) {
	acc, ok := d.accounts[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *acc
	return &clone, nil
}

func (d *stubDirectory) All() []domain.Account {
	out := make([]domain.Account, 0, len(d.accounts))
	for _, acc := range d.accounts {
		out = append(out, *acc)
	}
	return out
}

type stubSessionStore struct {
	mu      sync.Mutex
	current domain.Session
	present bool
	setErr  error
}

func (s *stubSessionStore) Load(_ context.Context) {}

func (s *stubSessionStore) Set(_ context.Context, sess domain.Session) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current, s.present = sess, true
	return nil
}

func (s *stubSessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current, s.present = domain.Session{}, false
	return nil
}

func (s *stubSessionStore) Current() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.present
}

func newTestAuthService(t *testing.T) (*AuthService, *stubSessionStore) {
	t.Helper()
	store := &stubSessionStore{}
	svc := NewAuthService(newStubDirectory(t), store, nil, 0, zerolog.Nop())
	return svc, store
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)

	sess, err := svc.Login(context.Background(), "admin@skylines.com", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.ID != "1" || sess.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sess.Email != "admin@skylines.com" || sess.Name != "Admin User" {
		t.Fatalf("session does not mirror account: %+v", sess)
	}
	if !svc.IsAuthenticated() {
		t.Fatalf("expected authenticated after login")
	}
	if !svc.IsAdmin() {
		t.Fatalf("expected admin after admin login")
	}
	if svc.Loading() {
		t.Fatalf("loading should be reset after login")
	}
}

func TestAuthService_Login_UserRole(t *testing.T) {
	svc, _ := newTestAuthService(t)

	sess, err := svc.Login(context.Background(), "user@example.com", "user123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.Role != domain.RoleUser {
		t.Fatalf("expected USER role, got %s", sess.Role)
	}
	if svc.IsAdmin() {
		t.Fatalf("USER session must not be admin")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), "admin@skylines.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("failed login must not establish a session")
	}
	if svc.Loading() {
		t.Fatalf("loading should be reset after failure")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	// An unknown email surfaces as invalid credentials, not account-not-found.
	if _, err := svc.Login(context.Background(), "ghost@example.com", "admin123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_CaseSensitiveEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), "Admin@Skylines.com", "admin123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("email lookup must be case-sensitive, got %v", err)
	}
}

func TestAuthService_Login_FailureKeepsExistingSession(t *testing.T) {
	svc, store := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), "admin@skylines.com", "admin123"); err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin@skylines.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	sess, ok := store.Current()
	if !ok || sess.Email != "admin@skylines.com" {
		t.Fatalf("failed login must leave the prior session intact, got %+v present=%v", sess, ok)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, store := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), "user@example.com", "user123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	svc.Logout(context.Background())

	if svc.IsAuthenticated() {
		t.Fatalf("expected signed out after logout")
	}
	if _, ok := store.Current(); ok {
		t.Fatalf("logout must clear the store")
	}

	// Logout with no session is a no-op, not an error.
	svc.Logout(context.Background())
	if svc.IsAuthenticated() {
		t.Fatalf("still expected signed out")
	}
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if err := svc.Signup(context.Background(), "user@example.com", "Someone", "pass123"); err != domain.ErrEmailAlreadyRegistered {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthService_Signup_FreshEmailHasNoSideEffects(t *testing.T) {
	dir := newStubDirectory(t)
	store := &stubSessionStore{}
	svc := NewAuthService(dir, store, nil, 0, zerolog.Nop())
	before := len(dir.All())

	if err := svc.Signup(context.Background(), "new@example.com", "New User", "pass123"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("signup must not establish a session")
	}
	if _, ok := store.Current(); ok {
		t.Fatalf("signup must not write the session store")
	}
	if len(dir.All()) != before {
		t.Fatalf("signup must not grow the directory")
	}

	// The new email still cannot log in: no account was created.
	if _, err := svc.Login(context.Background(), "new@example.com", "pass123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unregistered signup, got %v", err)
	}
}

func TestAuthService_ForgotPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if err := svc.ForgotPassword(context.Background(), "ghost@example.com"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if err := svc.ForgotPassword(context.Background(), "admin@skylines.com"); err != nil {
		t.Fatalf("expected success for known email, got %v", err)
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if err := svc.ResetPassword(context.Background(), "", "newpass123"); err != domain.ErrResetTokenRequired {
		t.Fatalf("expected ErrResetTokenRequired, got %v", err)
	}
	if err := svc.ResetPassword(context.Background(), "any-token", "newpass123"); err != nil {
		t.Fatalf("any non-empty token is accepted, got %v", err)
	}

	// The reset mutates nothing: the old password still works.
	if _, err := svc.Login(context.Background(), "user@example.com", "user123"); err != nil {
		t.Fatalf("old password must still work after reset: %v", err)
	}
}

func TestAuthService_OverlappingLoginsSerialize(t *testing.T) {
	svc, store := newTestAuthService(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Login(context.Background(), "admin@skylines.com", "admin123")
		}()
	}
	wg.Wait()

	sess, ok := store.Current()
	if !ok || sess.Email != "admin@skylines.com" {
		t.Fatalf("expected a consistent session after concurrent logins, got %+v", sess)
	}
	if svc.Loading() {
		t.Fatalf("loading must be false once all operations finish")
	}
}
