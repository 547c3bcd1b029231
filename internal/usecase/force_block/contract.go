package force_block

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	CancelByIDs(ctx context.Context, ids []int64) (int64, error)
}

// PricingRepository интерфейс хранилища переопределений цен
type PricingRepository interface {
	Merge(ctx context.Context, date time.Time, entries []domain.PricingOverride) error
	Remove(ctx context.Context, date time.Time, slot string) error
}

// BlockLogRepository интерфейс журнала блокировок
type BlockLogRepository interface {
	Append(ctx context.Context, entry *domain.BlockLogEntry) error
	Trim(ctx context.Context, keep int) (int64, error)
}

// Metrics счетчик ручных блокировок
type Metrics interface {
	IncForceBlock(action string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
