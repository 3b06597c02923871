package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingProcessing BookingStatus = "processing"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

var ErrBookingNotFound = errors.New("booking not found")

// Booking ties a passenger to a flight with a paid total.
type Booking struct {
	ID           string        `json:"id"`
	FlightNumber string        `json:"flight_number"`
	Origin       string        `json:"origin"`
	Destination  string        `json:"destination"`
	Departure    time.Time     `json:"departure"`
	Passengers   int           `json:"passengers"`
	TotalPrice   float64       `json:"total_price"`
	Status       BookingStatus `json:"status"`
}
