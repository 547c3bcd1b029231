package users

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, role *domain.Role) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, name string, email *string) error
	SetStatus(ctx context.Context, id int64, status domain.UserStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
