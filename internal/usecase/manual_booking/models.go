package manual_booking

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Request запрос администратора на бронь за наличные
type Request struct {
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Sport      string
	Amount     float64
	GuestName  *string
	GuestPhone *string
}

// Response созданная бронь
type Response struct {
	Reservation *domain.Reservation
}
