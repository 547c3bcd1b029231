package get_dashboard_stats

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/infra/storage/stats"
)

// StatsRepository интерфейс read-only агрегатов
type StatsRepository interface {
	RevenueByDate(ctx context.Context, from, to time.Time) ([]stats.DailyRevenue, error)
	CountUpcomingActive(ctx context.Context, today, to time.Time, fromStart string) (int, error)
	CountConfirmedOn(ctx context.Context, date time.Time) (int, error)
	CountUsers(ctx context.Context, role domain.Role) (int, error)
}

// PricingRepository интерфейс хранилища переопределений цен
type PricingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.PricingOverride, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
