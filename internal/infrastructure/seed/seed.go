// Package seed holds the fixed datasets the portal serves. There is no real
// backend: every listing, chart, and directory below is the entire data set.
package seed

import (
	"time"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// Flights returns the flight catalog.
func Flights() []domain.Flight {
	return []domain.Flight{
		{
			ID:             "FL-1001",
			FlightNumber:   "SW-101",
			Origin:         "New York (JFK)",
			Destination:    "London (LHR)",
			Departure:      date(2025, time.June, 15, 9, 0),
			Arrival:        date(2025, time.June, 15, 21, 30),
			Price:          549.99,
			AvailableSeats: 42,
			Status:         domain.FlightScheduled,
		},
		{
			ID:             "FL-1002",
			FlightNumber:   "SW-202",
			Origin:         "London (LHR)",
			Destination:    "Paris (CDG)",
			Departure:      date(2025, time.June, 16, 10, 15),
			Arrival:        date(2025, time.June, 16, 12, 30),
			Price:          199.99,
			AvailableSeats: 28,
			Status:         domain.FlightScheduled,
		},
		{
			ID:             "FL-1003",
			FlightNumber:   "SW-305",
			Origin:         "Paris (CDG)",
			Destination:    "Rome (FCO)",
			Departure:      date(2025, time.June, 16, 14, 0),
			Arrival:        date(2025, time.June, 16, 16, 15),
			Price:          249.99,
			AvailableSeats: 15,
			Status:         domain.FlightScheduled,
		},
		{
			ID:             "FL-1004",
			FlightNumber:   "SW-410",
			Origin:         "Rome (FCO)",
			Destination:    "Barcelona (BCN)",
			Departure:      date(2025, time.June, 17, 7, 30),
			Arrival:        date(2025, time.June, 17, 9, 45),
			Price:          179.99,
			AvailableSeats: 32,
			Status:         domain.FlightScheduled,
		},
		{
			ID:             "FL-1005",
			FlightNumber:   "SW-520",
			Origin:         "Barcelona (BCN)",
			Destination:    "New York (JFK)",
			Departure:      date(2025, time.June, 18, 12, 0),
			Arrival:        date(2025, time.June, 18, 22, 30),
			Price:          599.99,
			AvailableSeats: 5,
			Status:         domain.FlightScheduled,
		},
		{
			ID:             "FL-1006",
			FlightNumber:   "SW-630",
			Origin:         "New York (JFK)",
			Destination:    "Miami (MIA)",
			Departure:      date(2025, time.June, 19, 8, 0),
			Arrival:        date(2025, time.June, 19, 11, 15),
			Price:          299.99,
			AvailableSeats: 0,
			Status:         domain.FlightSoldOut,
		},
	}
}

// Bookings returns the booking history.
func Bookings() []domain.Booking {
	return []domain.Booking{
		{
			ID:           "B1001",
			FlightNumber: "SW-101",
			Origin:       "New York (JFK)",
			Destination:  "London (LHR)",
			Departure:    date(2023, time.June, 15, 9, 0),
			Passengers:   1,
			TotalPrice:   450.99,
			Status:       domain.BookingConfirmed,
		},
		{
			ID:           "B1002",
			FlightNumber: "SW-520",
			Origin:       "Barcelona (BCN)",
			Destination:  "New York (JFK)",
			Departure:    date(2023, time.July, 10, 12, 0),
			Passengers:   2,
			TotalPrice:   1200.50,
			Status:       domain.BookingProcessing,
		},
		{
			ID:           "B1003",
			FlightNumber: "SW-305",
			Origin:       "Paris (CDG)",
			Destination:  "Rome (FCO)",
			Departure:    date(2023, time.August, 5, 14, 0),
			Passengers:   2,
			TotalPrice:   780.25,
			Status:       domain.BookingConfirmed,
		},
		{
			ID:           "B1004",
			FlightNumber: "SW-202",
			Origin:       "London (LHR)",
			Destination:  "Paris (CDG)",
			Departure:    date(2023, time.May, 20, 10, 15),
			Passengers:   1,
			TotalPrice:   520.75,
			Status:       domain.BookingCompleted,
		},
	}
}

// Tickets returns the issued tickets.
func Tickets() []domain.Ticket {
	return []domain.Ticket{
		{
			ID:           "T9876",
			FlightNumber: "SW-101",
			Origin:       "New York (JFK)",
			Destination:  "London (LHR)",
			Departure:    date(2025, time.June, 15, 9, 0),
			SeatNumber:   "14A",
			Gate:         "C12",
			Terminal:     "4",
			Status:       domain.TicketUpcoming,
		},
		{
			ID:           "T9875",
			FlightNumber: "SW-202",
			Origin:       "London (LHR)",
			Destination:  "Paris (CDG)",
			Departure:    date(2025, time.June, 16, 10, 15),
			SeatNumber:   "22C",
			Gate:         "A04",
			Terminal:     "2",
			Status:       domain.TicketUpcoming,
		},
		{
			ID:           "T9874",
			FlightNumber: "SW-305",
			Origin:       "Paris (CDG)",
			Destination:  "Rome (FCO)",
			Departure:    date(2025, time.June, 16, 14, 0),
			SeatNumber:   "18B",
			Gate:         "B07",
			Terminal:     "1",
			Status:       domain.TicketUpcoming,
		},
		{
			ID:           "T9873",
			FlightNumber: "SW-410",
			Origin:       "Rome (FCO)",
			Destination:  "Barcelona (BCN)",
			Departure:    date(2023, time.May, 20, 7, 30),
			SeatNumber:   "5D",
			Gate:         "D15",
			Terminal:     "3",
			Status:       domain.TicketPast,
		},
	}
}

// Members returns the user-management roster.
func Members() []domain.Member {
	return []domain.Member{
		{ID: "1", Email: "admin@skylines.com", Name: "Admin User", Role: domain.RoleAdmin, Status: domain.MemberActive},
		{ID: "2", Email: "user@example.com", Name: "Regular User", Role: domain.RoleUser, Status: domain.MemberActive},
		{ID: "3", Email: "jane.doe@example.com", Name: "Jane Doe", Role: domain.RoleUser, Status: domain.MemberInactive},
		{ID: "4", Email: "john.smith@example.com", Name: "John Smith", Role: domain.RoleUser, Status: domain.MemberActive},
		{ID: "5", Email: "manager@skylines.com", Name: "Operations Manager", Role: domain.RoleAdmin, Status: domain.MemberActive},
	}
}

// Stats returns the fixed dashboard aggregates.
func Stats() domain.DashboardStats {
	return domain.DashboardStats{
		TotalFlights:  386,
		TotalBookings: 2583,
		TotalRevenue:  348921,
		TotalUsers:    1489,
		RevenueByMonth: []domain.ChartPoint{
			{Label: "Jan", Value: 42100}, {Label: "Feb", Value: 38900},
			{Label: "Mar", Value: 51200}, {Label: "Apr", Value: 47800},
			{Label: "May", Value: 56300}, {Label: "Jun", Value: 61400},
		},
		Occupancy: []domain.ChartPoint{
			{Label: "Economy", Value: 68}, {Label: "Business", Value: 24},
			{Label: "First", Value: 8},
		},
		BookingsTrend: []domain.ChartPoint{
			{Label: "Jan", Value: 310}, {Label: "Feb", Value: 290},
			{Label: "Mar", Value: 405}, {Label: "Apr", Value: 380},
			{Label: "May", Value: 450}, {Label: "Jun", Value: 495},
		},
	}
}
