package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/api/metrics"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
)

// Navigation targets the guard redirects to.
const (
	LoginPath = "/login"
	HomePath  = "/dashboard"
)

// RouteAccess declares a page's access requirements.
type RouteAccess struct {
	// RequiresAuth gates the page behind an established session.
	RequiresAuth bool
	// AdminOnly additionally requires the ADMIN role.
	AdminOnly bool
	// AuthPage marks login/signup/forgot/reset pages, which invert the
	// rule: an authenticated visitor is sent to the landing page instead.
	AuthPage bool
}

// Decision is the outcome of a single guard evaluation.
type Decision string

const (
	DecisionRender        Decision = "render"
	DecisionLoading       Decision = "loading"
	DecisionRedirectLogin Decision = "redirect_login"
	DecisionRedirectHome  Decision = "redirect_home"
)

// Decide evaluates the access state machine for one navigation. It is pure:
// every render re-evaluates from scratch, nothing is persisted.
//
// Order matters: while an auth operation is in flight no redirect is decided
// yet, and a missing session redirects to login before the admin check runs.
func Decide(session domain.Session, present, loading bool, route RouteAccess) Decision {
	if loading {
		return DecisionLoading
	}
	if route.AuthPage {
		if present {
			return DecisionRedirectHome
		}
		return DecisionRender
	}
	if route.RequiresAuth && !present {
		return DecisionRedirectLogin
	}
	if route.AdminOnly && !session.IsAdmin() {
		return DecisionRedirectHome
	}
	return DecisionRender
}

// Guard wraps a page route with the access decision. Redirects map to
// 303 See Other; the loading placeholder is a 200 with a small JSON body.
func Guard(auth ports.AuthService, route RouteAccess) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, present := auth.Current()
			decision := Decide(session, present, auth.Loading(), route)
			metrics.GuardDecisionsTotal.WithLabelValues(string(decision)).Inc()

			switch decision {
			case DecisionLoading:
				return c.JSON(http.StatusOK, map[string]string{"status": "loading"})
			case DecisionRedirectLogin:
				return c.Redirect(http.StatusSeeOther, LoginPath)
			case DecisionRedirectHome:
				return c.Redirect(http.StatusSeeOther, HomePath)
			default:
				return next(c)
			}
		}
	}
}
