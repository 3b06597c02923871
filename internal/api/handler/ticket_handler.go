package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
)

// TicketHandler serves issued tickets.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

type ticketResponse struct {
	ID           string    `json:"id"`
	FlightNumber string    `json:"flight_number"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Departure    time.Time `json:"departure"`
	SeatNumber   string    `json:"seat_number"`
	Gate         string    `json:"gate"`
	Terminal     string    `json:"terminal"`
	Status       string    `json:"status"`
}

type listTicketsResponse struct {
	Data []ticketResponse `json:"data"`
}

// List returns tickets, optionally restricted to the tab query param
// (upcoming or past).
func (h *TicketHandler) List(c echo.Context) error {
	tickets, err := h.service.List(c.Request().Context(), domain.TicketStatus(c.QueryParam("tab")))
	if err != nil {
		return err
	}

	data := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		data = append(data, ticketResponse{
			ID:           t.ID,
			FlightNumber: t.FlightNumber,
			Origin:       t.Origin,
			Destination:  t.Destination,
			Departure:    t.Departure,
			SeatNumber:   t.SeatNumber,
			Gate:         t.Gate,
			Terminal:     t.Terminal,
			Status:       string(t.Status),
		})
	}
	return c.JSON(http.StatusOK, listTicketsResponse{Data: data})
}
