package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler answers the navigable page routes the access guard wraps.
// Pages respond with a small descriptor; the data behind each page lives on
// the /api/v1 routes.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

type pageResponse struct {
	Page string `json:"page"`
}

// Render returns a handler identifying the named page.
func (h *PageHandler) Render(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, pageResponse{Page: name})
	}
}
