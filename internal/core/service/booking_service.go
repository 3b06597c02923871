package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
)

// BookingService serves the fixed booking history.
type BookingService struct {
	bookings []domain.Booking
	log      zerolog.Logger
}

func NewBookingService(bookings []domain.Booking, log zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, log: log}
}

// List filters bookings by free-text search over id, flight number, origin,
// and destination, and optionally by status.
func (s *BookingService) List(_ context.Context, in ports.ListBookingsInput) ([]domain.Booking, error) {
	needle := strings.ToLower(strings.TrimSpace(in.Search))
	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if needle != "" && !bookingMatches(b, needle) {
			continue
		}
		if in.Status != "" && b.Status != in.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// Get returns a single booking by ID.
func (s *BookingService) Get(_ context.Context, id string) (*domain.Booking, error) {
	for _, b := range s.bookings {
		if b.ID == id {
			clone := b
			return &clone, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func bookingMatches(b domain.Booking, needle string) bool {
	return strings.Contains(strings.ToLower(b.ID), needle) ||
		strings.Contains(strings.ToLower(b.FlightNumber), needle) ||
		strings.Contains(strings.ToLower(b.Origin), needle) ||
		strings.Contains(strings.ToLower(b.Destination), needle)
}
