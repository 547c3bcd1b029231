package bookings

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, userID int64) ([]models.BookingResponse, error)
	CancelByUser(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error)
	GetTodayConfirmed(ctx context.Context) ([]models.BookingResponse, error)
	MarkArrived(ctx context.Context, bookingID int64) (*models.BookingResponse, error)
	List(ctx context.Context, req *models.ListRequest) ([]models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
