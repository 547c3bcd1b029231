package get_dashboard_stats

import (
	"context"

	getDashboardStats "github.com/m04kA/TurfBookingService/internal/usecase/get_dashboard_stats"
)

type GetDashboardStatsUseCase interface {
	Execute(ctx context.Context) (*getDashboardStats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
