package venue

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// PricingRepository интерфейс хранилища переопределений цен
type PricingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.PricingOverride, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.PricingOverride, error)
	Merge(ctx context.Context, date time.Time, entries []domain.PricingOverride) error
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// SettingRepository интерфейс key-value настроек площадки
type SettingRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	GetByPrefix(ctx context.Context, prefix string) (map[string]string, error)
	Upsert(ctx context.Context, settings []domain.Setting) error
	Delete(ctx context.Context, key string) error
}

// BlockLogRepository интерфейс журнала блокировок
type BlockLogRepository interface {
	List(ctx context.Context, limit int) ([]*domain.BlockLogEntry, error)
}

// Sweeper ленивая очистка просроченных удержаний
type Sweeper interface {
	SweepStale(ctx context.Context) int64
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
