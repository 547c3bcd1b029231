package admin_booking_action

import (
	"context"

	adminBookingAction "github.com/m04kA/TurfBookingService/internal/usecase/admin_booking_action"
)

type AdminBookingActionUseCase interface {
	Execute(ctx context.Context, req *adminBookingAction.Request) (*adminBookingAction.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
