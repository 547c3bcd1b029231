package verify_payment

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/integrations/eventbus"
	"github.com/m04kA/TurfBookingService/internal/integrations/mailer"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ConfirmPending(ctx context.Context, ids []int64, orderID, paymentID string) ([]int64, error)
	GetWithOwnerByIDs(ctx context.Context, ids []int64) ([]*domain.ReservationWithOwner, error)
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	IncrementUsage(ctx context.Context, id int64) error
}

// SignatureVerifier проверка подписи платежного шлюза
type SignatureVerifier interface {
	VerifySignature(orderID, paymentID, signature string) bool
}

// ReceiptMailer отправка письма-квитанции
type ReceiptMailer interface {
	SendBookingReceipt(to string, receipt mailer.Receipt) error
}

// Messenger отправка сообщения в WhatsApp
type Messenger interface {
	SendWhatsApp(ctx context.Context, to, body string) error
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event eventbus.BookingConfirmedEvent) error
}

// Metrics доменные счетчики
type Metrics interface {
	AddBookingsConfirmed(n int)
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
