package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// ctxSession rebuilds the caller's session from the claims injected by the
// Auth middleware and fast-fails before any service call: a missing or
// unknown role means the middleware did not run or the token is unusable.
func ctxSession(c echo.Context) (domain.Session, error) {
	role, _ := c.Get("role").(string)
	if !domain.Role(role).Valid() {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	name, _ := c.Get("name").(string)

	return domain.Session{
		ID:    id,
		Email: email,
		Name:  name,
		Role:  domain.Role(role),
	}, nil
}
