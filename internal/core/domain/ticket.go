package domain

import "time"

// TicketStatus splits tickets into the two tabs the portal shows.
type TicketStatus string

const (
	TicketUpcoming TicketStatus = "upcoming"
	TicketPast     TicketStatus = "past"
)

// Ticket is an issued boarding document for a booked flight.
type Ticket struct {
	ID           string       `json:"id"`
	FlightNumber string       `json:"flight_number"`
	Origin       string       `json:"origin"`
	Destination  string       `json:"destination"`
	Departure    time.Time    `json:"departure"`
	SeatNumber   string       `json:"seat_number"`
	Gate         string       `json:"gate"`
	Terminal     string       `json:"terminal"`
	Status       TicketStatus `json:"status"`
}
