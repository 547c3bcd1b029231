package initiate_booking

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/integrations/razorpay"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	SetPaymentRef(ctx context.Context, ids []int64, orderID string) error
}

// PricingRepository интерфейс хранилища переопределений цен
type PricingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.PricingOverride, error)
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	KeyID() string
	CreateOrder(amountPaise int64, receipt string) (*razorpay.Order, error)
}

// Sweeper ленивая очистка просроченных удержаний
type Sweeper interface {
	SweepStale(ctx context.Context) int64
}

// Metrics доменные счетчики
type Metrics interface {
	AddBookingsInitiated(n int)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
