package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
)

// MemberHandler backs the admin user-management screen.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

type createMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"required"`
	Admin bool   `json:"admin"`
}

type memberResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type listMembersResponse struct {
	Data []memberResponse `json:"data"`
}

// List returns members matching the search query param.
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.service.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}

	data := make([]memberResponse, 0, len(members))
	for _, m := range members {
		data = append(data, toMemberResponse(m))
	}
	return c.JSON(http.StatusOK, listMembersResponse{Data: data})
}

// Create adds a member to the in-memory roster.
func (h *MemberHandler) Create(c echo.Context) error {
	var req createMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m, err := h.service.Create(c.Request().Context(), ports.CreateMemberInput{
		Email: req.Email,
		Name:  req.Name,
		Admin: req.Admin,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMemberResponse(*m))
}

// ToggleStatus flips a member between active and inactive.
func (h *MemberHandler) ToggleStatus(c echo.Context) error {
	m, err := h.service.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMemberResponse(*m))
}

// ToggleRole flips a member between ADMIN and USER.
func (h *MemberHandler) ToggleRole(c echo.Context) error {
	m, err := h.service.ToggleRole(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMemberResponse(*m))
}

func toMemberResponse(m domain.Member) memberResponse {
	return memberResponse{
		ID:     m.ID,
		Email:  m.Email,
		Name:   m.Name,
		Role:   string(m.Role),
		Status: string(m.Status),
	}
}
