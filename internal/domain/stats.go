package domain

type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type ZipCount struct {
	Zip   string `json:"zip"`
	Count int    `json:"count"`
}

// DashboardStats is the full aggregate snapshot served to the dashboard.
type DashboardStats struct {
	TotalCustomers        int            `json:"totalCustomers"`
	TotalBookings         int            `json:"totalBookings"`
	NewCustomersThisMonth int            `json:"newCustomersThisMonth"`
	BookingsThisMonth     int            `json:"bookingsThisMonth"`
	PopularServices       []ServiceCount `json:"popularServices"`
	RecentBookings        []Booking      `json:"recentBookings"`
	BookingsByMonth       []MonthCount   `json:"bookingsByMonth"`
	TopZipCodes           []ZipCount     `json:"topZipCodes"`
}
