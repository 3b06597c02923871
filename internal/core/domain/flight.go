package domain

import (
	"errors"
	"time"
)

// FlightStatus represents the sale state of a scheduled flight.
type FlightStatus string

const (
	FlightScheduled FlightStatus = "scheduled"
	FlightSoldOut   FlightStatus = "sold_out"
	FlightDelayed   FlightStatus = "delayed"
	FlightCancelled FlightStatus = "cancelled"
)

var ErrFlightNotFound = errors.New("flight not found")

// Flight is a single scheduled leg in the catalog.
type Flight struct {
	ID             string       `json:"id"`
	FlightNumber   string       `json:"flight_number"`
	Origin         string       `json:"origin"`
	Destination    string       `json:"destination"`
	Departure      time.Time    `json:"departure"`
	Arrival        time.Time    `json:"arrival"`
	Price          float64      `json:"price"`
	AvailableSeats int          `json:"available_seats"`
	Status         FlightStatus `json:"status"`
}
