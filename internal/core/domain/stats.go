package domain

// ChartPoint is a single labelled value in a dashboard series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DashboardStats aggregates the fixed numbers shown on the dashboard.
type DashboardStats struct {
	TotalFlights   int          `json:"total_flights"`
	TotalBookings  int          `json:"total_bookings"`
	TotalRevenue   float64      `json:"total_revenue"`
	TotalUsers     int          `json:"total_users"`
	RevenueByMonth []ChartPoint `json:"revenue_by_month"`
	Occupancy      []ChartPoint `json:"occupancy"`
	BookingsTrend  []ChartPoint `json:"bookings_trend"`
}
