package get_dashboard_stats

import getDashboardStats "github.com/m04kA/TurfBookingService/internal/usecase/get_dashboard_stats"

// DayRevenueResponse выручка за день
type DayRevenueResponse struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// DashboardResponse HTTP response model
type DashboardResponse struct {
	TodayRevenue   float64              `json:"todayRevenue"`
	ActiveBookings int                  `json:"activeBookings"`
	TotalUsers     int                  `json:"totalUsers"`
	OccupancyRate  int                  `json:"occupancyRate"`
	Last7Days      []DayRevenueResponse `json:"last7Days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getDashboardStats.Response) DashboardResponse {
	days := make([]DayRevenueResponse, 0, len(resp.Last7Days))
	for _, d := range resp.Last7Days {
		days = append(days, DayRevenueResponse{Date: d.Date, Revenue: d.Revenue, Bookings: d.Bookings})
	}
	return DashboardResponse{
		TodayRevenue:   resp.TodayRevenue,
		ActiveBookings: resp.ActiveBookings,
		TotalUsers:     resp.TotalUsers,
		OccupancyRate:  resp.OccupancyRate,
		Last7Days:      days,
	}
}
