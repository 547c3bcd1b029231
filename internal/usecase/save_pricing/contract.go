package save_pricing

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// PricingRepository интерфейс хранилища переопределений цен
type PricingRepository interface {
	Merge(ctx context.Context, date time.Time, entries []domain.PricingOverride) error
	ClearDate(ctx context.Context, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
