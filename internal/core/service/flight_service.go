package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
)

const defaultFlightsPerPage = 5

// FlightService serves the fixed flight catalog with in-memory search,
// filtering, sorting, and pagination.
type FlightService struct {
	flights []domain.Flight
	log     zerolog.Logger
}

func NewFlightService(flights []domain.Flight, log zerolog.Logger) *FlightService {
	return &FlightService{flights: flights, log: log}
}

// List applies search, status filter, sort, and pagination in that order.
func (s *FlightService) List(_ context.Context, in ports.ListFlightsInput) (*ports.FlightPage, error) {
	filtered := make([]domain.Flight, 0, len(s.flights))
	needle := strings.ToLower(strings.TrimSpace(in.Search))
	for _, f := range s.flights {
		if needle != "" && !flightMatches(f, needle) {
			continue
		}
		if in.Status != "" && f.Status != in.Status {
			continue
		}
		filtered = append(filtered, f)
	}

	sortFlights(filtered, in.SortBy, in.SortDir)

	limit := in.Limit
	if limit <= 0 {
		limit = defaultFlightsPerPage
	}
	page := in.Page
	if page <= 0 {
		page = 1
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ports.FlightPage{
		Flights:    filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Get returns a single flight by its catalog ID.
func (s *FlightService) Get(_ context.Context, id string) (*domain.Flight, error) {
	for _, f := range s.flights {
		if f.ID == id {
			clone := f
			return &clone, nil
		}
	}
	return nil, domain.ErrFlightNotFound
}

// flightMatches reports whether the flight matches a lowercased search term
// on flight number, origin, or destination.
func flightMatches(f domain.Flight, needle string) bool {
	return strings.Contains(strings.ToLower(f.FlightNumber), needle) ||
		strings.Contains(strings.ToLower(f.Origin), needle) ||
		strings.Contains(strings.ToLower(f.Destination), needle)
}

// sortFlights orders flights by the requested field. An unknown or empty
// field keeps the seed order.
func sortFlights(flights []domain.Flight, field, dir string) {
	var less func(a, b domain.Flight) bool
	switch field {
	case "departure":
		less = func(a, b domain.Flight) bool { return a.Departure.Before(b.Departure) }
	case "price":
		less = func(a, b domain.Flight) bool { return a.Price < b.Price }
	case "seats":
		less = func(a, b domain.Flight) bool { return a.AvailableSeats < b.AvailableSeats }
	default:
		return
	}

	desc := dir == "desc"
	sort.SliceStable(flights, func(i, j int) bool {
		if desc {
			return less(flights[j], flights[i])
		}
		return less(flights[i], flights[j])
	})
}
