package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the profile and settings forms. Updates are
// acknowledged but not persisted: the account directory is fixed seed data.
type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

type updateProfileRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type settingsResponse struct {
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	Newsletter    bool   `json:"newsletter"`
}

// Get returns the identity of the authenticated caller.
func (h *ProfileHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess)
}

// Update acknowledges a profile edit without persisting it.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "profile updated"})
}

// Settings returns the fixed preference defaults.
func (h *ProfileHandler) Settings(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settingsResponse{
		Language:      "en",
		Notifications: true,
		Newsletter:    false,
	})
}
