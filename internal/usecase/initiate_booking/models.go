package initiate_booking

import "time"

// Request модель запроса на создание чекаута
type Request struct {
	UserID *int64    // nil для гостя
	Date   time.Time // полночь UTC
	Slots  []string  // "HH:MM-HH:MM"
	Sport  string
	Amount float64 // сумма, которую видел клиент (до скидки); 0 - не проверять

	GuestName  *string
	GuestPhone *string
	GuestEmail *string

	CouponCode *string
}

// Response заказ платежного шлюза и созданные PENDING-брони
type Response struct {
	OrderID     string
	KeyID       string
	AmountPaise int64
	Currency    string
	Receipt     string

	BookingIDs  []int64
	Subtotal    float64
	Discount    float64
	FinalAmount float64
}
