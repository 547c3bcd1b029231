package verify_payment

import "github.com/m04kA/TurfBookingService/internal/domain"

// Request данные, которые вернул checkout платежного шлюза
type Request struct {
	OrderID    string
	PaymentID  string
	Signature  string
	BookingIDs []int64
}

// Response подтвержденные брони чекаута
type Response struct {
	Bookings []*domain.ReservationWithOwner
	// AlreadyConfirmed true для повторной проверки того же платежа: побочных эффектов не было
	AlreadyConfirmed bool
}
