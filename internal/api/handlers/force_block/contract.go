package force_block

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/domain"
	forceBlock "github.com/m04kA/TurfBookingService/internal/usecase/force_block"
)

type ForceBlockUseCase interface {
	Execute(ctx context.Context, req *forceBlock.Request) (*forceBlock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminDirectory поиск администратора для журнала блокировок
type AdminDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
