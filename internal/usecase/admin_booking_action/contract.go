package admin_booking_action

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/integrations/mailer"
	"github.com/m04kA/TurfBookingService/internal/integrations/razorpay"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetWithOwnerByIDs(ctx context.Context, ids []int64) ([]*domain.ReservationWithOwner, error)
	Cancel(ctx context.Context, id int64) error
	MarkRefunded(ctx context.Context, id int64) error
}

// RefundGateway интерфейс возврата платежей
type RefundGateway interface {
	RefundPayment(paymentID string, amountPaise int64) (*razorpay.Refund, error)
}

// RefundMailer интерфейс письма о возврате
type RefundMailer interface {
	SendRefundReceipt(to string, receipt mailer.Receipt) error
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
