package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// fakeAuth scripts the auth service behavior for handler tests.
type fakeAuth struct {
	loginSession domain.Session
	loginErr     error
	signupErr    error
	forgotErr    error
	resetErr     error
	loggedOut    bool
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (domain.Session, error) {
	return f.loginSession, f.loginErr
}
func (f *fakeAuth) Signup(_ context.Context, _, _, _ string) error     { return f.signupErr }
func (f *fakeAuth) Logout(_ context.Context)                           { f.loggedOut = true }
func (f *fakeAuth) ForgotPassword(_ context.Context, _ string) error   { return f.forgotErr }
func (f *fakeAuth) ResetPassword(_ context.Context, _, _ string) error { return f.resetErr }
func (f *fakeAuth) Current() (domain.Session, bool)                    { return domain.Session{}, false }
func (f *fakeAuth) IsAuthenticated() bool                              { return false }
func (f *fakeAuth) IsAdmin() bool                                      { return false }
func (f *fakeAuth) Loading() bool                                      { return false }

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	auth := &fakeAuth{loginSession: domain.Session{
		ID: "1", Email: "admin@skylines.com", Name: "Admin User", Role: domain.RoleAdmin,
	}}
	h := NewAuthHandler(auth, "secret", time.Hour)

	c, rec := newAuthTestContext(t, `{"email":"admin@skylines.com","password":"admin123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token string         `json:"token"`
		User  domain.Session `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != "1" || resp.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(resp.Token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if claims["sub"] != "1" || claims["role"] != "ADMIN" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	auth := &fakeAuth{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(auth, "secret", time.Hour)

	c, _ := newAuthTestContext(t, `{"email":"admin@skylines.com","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to surface, got %v", err)
	}
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&fakeAuth{}, "secret", time.Hour)

	c, _ := newAuthTestContext(t, `{"email":"not-an-email","password":"x"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError for invalid email, got %v", err)
	}
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	auth := &fakeAuth{signupErr: domain.ErrEmailAlreadyRegistered}
	h := NewAuthHandler(auth, "secret", time.Hour)

	c, _ := newAuthTestContext(t, `{"email":"user@example.com","name":"Someone","password":"pass123"}`)
	err := h.Signup(c)
	if !errors.Is(err, domain.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthHandler_Signup_Accepted(t *testing.T) {
	h := NewAuthHandler(&fakeAuth{}, "secret", time.Hour)

	c, rec := newAuthTestContext(t, `{"email":"new@example.com","name":"New User","password":"pass123"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("signup handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&fakeAuth{}, "secret", time.Hour)

	c, _ := newAuthTestContext(t, `{"email":"new@example.com","name":"New User","password":"abc"}`)
	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError for short password, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	auth := &fakeAuth{}
	h := NewAuthHandler(auth, "secret", time.Hour)

	c, rec := newAuthTestContext(t, ``)
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !auth.loggedOut {
		t.Fatalf("logout did not reach the service")
	}
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	auth := &fakeAuth{forgotErr: domain.ErrAccountNotFound}
	h := NewAuthHandler(auth, "secret", time.Hour)

	c, _ := newAuthTestContext(t, `{"email":"ghost@example.com"}`)
	err := h.ForgotPassword(c)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthHandler_ResetPassword_MissingToken(t *testing.T) {
	auth := &fakeAuth{resetErr: domain.ErrResetTokenRequired}
	h := NewAuthHandler(auth, "secret", time.Hour)

	c, _ := newAuthTestContext(t, `{"token":"","new_password":"newpass123"}`)
	err := h.ResetPassword(c)
	if !errors.Is(err, domain.ErrResetTokenRequired) {
		t.Fatalf("expected ErrResetTokenRequired, got %v", err)
	}
}

func TestAuthHandler_ResetPassword_Success(t *testing.T) {
	h := NewAuthHandler(&fakeAuth{}, "secret", time.Hour)

	c, rec := newAuthTestContext(t, `{"token":"any-token","new_password":"newpass123"}`)
	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("reset handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
