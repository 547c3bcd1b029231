package get_slots

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// PricingRepository интерфейс хранилища переопределений цен
type PricingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.PricingOverride, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// Sweeper ленивая очистка просроченных удержаний
type Sweeper interface {
	SweepStale(ctx context.Context) int64
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
