package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/api/metrics"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
)

// AuthHandler exposes the auth flow: login, signup, logout, and the
// forgot/reset password pair.
type AuthHandler struct {
	auth      ports.AuthService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(auth ports.AuthService, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{auth: auth, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type loginResponse struct {
	Token string         `json:"token"`
	User  domain.Session `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates against the account directory and establishes a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	token, err := h.generateToken(sess)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionActive.Set(1)
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: sess})
}

// Signup acknowledges a registration. Mock behavior: a fresh email succeeds
// but no account is created and no session is established.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.Signup(c.Request().Context(), req.Email, req.Name, req.Password); err != nil {
		metrics.SignupsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "registration accepted"})
}

// Logout destroys the current session. Always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.auth.Logout(c.Request().Context())
	metrics.SessionActive.Set(0)
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// ForgotPassword checks the email against the directory and acknowledges the
// request. No token is generated or delivered.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("requested").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "password reset email sent"})
}

// ResetPassword acknowledges a reset carrying any non-empty token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("completed").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "password has been reset"})
}

// generateToken mints the HS256 bearer token API clients present on /api/v1.
// Claims mirror the session fields.
func (h *AuthHandler) generateToken(sess domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   sess.ID,
		"email": sess.Email,
		"name":  sess.Name,
		"role":  string(sess.Role),
		"exp":   time.Now().Add(h.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}
