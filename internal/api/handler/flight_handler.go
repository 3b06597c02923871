package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
)

// FlightHandler serves the flight catalog.
type FlightHandler struct {
	service ports.FlightService
}

func NewFlightHandler(service ports.FlightService) *FlightHandler {
	return &FlightHandler{service: service}
}

type flightResponse struct {
	ID             string    `json:"id"`
	FlightNumber   string    `json:"flight_number"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Departure      time.Time `json:"departure"`
	Arrival        time.Time `json:"arrival"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"available_seats"`
	Status         string    `json:"status"`
}

type paginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

type listFlightsResponse struct {
	Data       []flightResponse   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// List returns one page of the catalog, filtered and sorted per query params:
// search, status, sort_by (departure|price|seats), sort_dir (asc|desc),
// page, limit.
func (h *FlightHandler) List(c echo.Context) error {
	in := ports.ListFlightsInput{
		Search:  c.QueryParam("search"),
		Status:  domain.FlightStatus(c.QueryParam("status")),
		SortBy:  c.QueryParam("sort_by"),
		SortDir: c.QueryParam("sort_dir"),
	}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		in.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		in.Limit = v
	}

	page, err := h.service.List(c.Request().Context(), in)
	if err != nil {
		return err
	}

	data := make([]flightResponse, 0, len(page.Flights))
	for _, f := range page.Flights {
		data = append(data, toFlightResponse(f))
	}

	return c.JSON(http.StatusOK, listFlightsResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

// Get returns a single flight by catalog ID.
func (h *FlightHandler) Get(c echo.Context) error {
	f, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFlightResponse(*f))
}

func toFlightResponse(f domain.Flight) flightResponse {
	return flightResponse{
		ID:             f.ID,
		FlightNumber:   f.FlightNumber,
		Origin:         f.Origin,
		Destination:    f.Destination,
		Departure:      f.Departure,
		Arrival:        f.Arrival,
		Price:          f.Price,
		AvailableSeats: f.AvailableSeats,
		Status:         string(f.Status),
	}
}
