package manual_booking

import (
	"context"

	manualBooking "github.com/m04kA/TurfBookingService/internal/usecase/manual_booking"
)

type ManualBookingUseCase interface {
	Execute(ctx context.Context, req *manualBooking.Request) (*manualBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
