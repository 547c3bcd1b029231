package admin_booking_action

import "github.com/m04kA/TurfBookingService/internal/domain"

// Action действие администратора над бронью
type Action string

const (
	ActionCancel Action = "CANCEL"
	ActionRefund Action = "REFUND"
)

// Request запрос на отмену или возврат
type Request struct {
	AdminID   int64
	BookingID int64
	Password  string
	Action    Action
}

// Response результат действия
type Response struct {
	Booking *domain.ReservationWithOwner
	Message string
}
