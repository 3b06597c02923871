package ports

import (
	"context"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// ListFlightsInput carries the search, filter, sort, and pagination knobs of
// the flight listing.
type ListFlightsInput struct {
	Search  string
	Status  domain.FlightStatus // empty matches every status
	SortBy  string              // departure, price, seats; empty keeps seed order
	SortDir string              // asc (default) or desc
	Page    int
	Limit   int
}

// FlightPage is one page of the filtered flight catalog.
type FlightPage struct {
	Flights    []domain.Flight
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

type FlightService interface {
	List(ctx context.Context, in ListFlightsInput) (*FlightPage, error)
	Get(ctx context.Context, id string) (*domain.Flight, error)
}

// ListBookingsInput filters the booking history.
type ListBookingsInput struct {
	Search string
	Status domain.BookingStatus // empty matches every status
}

type BookingService interface {
	List(ctx context.Context, in ListBookingsInput) ([]domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
}

type TicketService interface {
	// List returns tickets in the given tab; an empty status returns all.
	List(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error)
}
