package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
)

// BookingHandler serves the booking history.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type bookingResponse struct {
	ID           string    `json:"id"`
	FlightNumber string    `json:"flight_number"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Departure    time.Time `json:"departure"`
	Passengers   int       `json:"passengers"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
}

type listBookingsResponse struct {
	Data []bookingResponse `json:"data"`
}

// List filters bookings per query params: search, status.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context(), ports.ListBookingsInput{
		Search: c.QueryParam("search"),
		Status: domain.BookingStatus(c.QueryParam("status")),
	})
	if err != nil {
		return err
	}

	data := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		data = append(data, toBookingResponse(b))
	}
	return c.JSON(http.StatusOK, listBookingsResponse{Data: data})
}

// Get returns a single booking by ID.
func (h *BookingHandler) Get(c echo.Context) error {
	b, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(*b))
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:           b.ID,
		FlightNumber: b.FlightNumber,
		Origin:       b.Origin,
		Destination:  b.Destination,
		Departure:    b.Departure,
		Passengers:   b.Passengers,
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
	}
}
