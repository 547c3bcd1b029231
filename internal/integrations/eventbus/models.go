package eventbus

import "time"

// RoutingKeyBookingConfirmed ключ маршрутизации события подтверждения брони
const RoutingKeyBookingConfirmed = "booking.confirmed"

// BookingConfirmedEvent событие об оплаченном чекауте
type BookingConfirmedEvent struct {
	BookingIDs  []int64   `json:"booking_ids"`
	Date        string    `json:"date"`
	Slots       []string  `json:"slots"`
	Amount      float64   `json:"amount"`
	PaymentID   string    `json:"payment_id"`
	UserID      *int64    `json:"user_id,omitempty"`
	CouponID    *int64    `json:"coupon_id,omitempty"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
