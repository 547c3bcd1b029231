package get_dashboard_stats

// DayRevenue выручка за один день
type DayRevenue struct {
	Date     string
	Revenue  float64
	Bookings int
}

// Response сводка для дашборда администратора
type Response struct {
	TodayRevenue   float64
	ActiveBookings int
	TotalUsers     int
	OccupancyRate  int
	Last7Days      []DayRevenue
}
