package auth

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/infra/cache/otp"
	"github.com/m04kA/TurfBookingService/internal/integrations/mailer"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetEmailVerified(ctx context.Context, id int64, email string) error
}

// GuestBookingLinker привязывает гостевые брони к новому аккаунту по телефону
type GuestBookingLinker interface {
	LinkGuestBookings(ctx context.Context, phone string, userID int64) (int64, error)
}

// OTPStore хранилище одноразовых кодов
type OTPStore interface {
	Issue(ctx context.Context, purpose otp.Purpose, subject string) (string, error)
	Verify(ctx context.Context, purpose otp.Purpose, subject, code string) error
}

// TokenIssuer выпускает JWT
type TokenIssuer interface {
	Issue(userID int64, role string) (string, time.Time, error)
}

// SMSSender отправка SMS с кодом
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// OTPMailer отправка кода на email
type OTPMailer interface {
	SendOTP(to, name, code string, purpose mailer.OTPPurpose) error
}

// Channels каналы доставки кодов; nil означает выключенный канал
type Channels struct {
	SMS      SMSSender
	Mailer   OTPMailer
	TurfName string
	OTPTTL   time.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
