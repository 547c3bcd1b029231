package validate_coupon

import "time"

// Request проверка купона из корзины
type Request struct {
	UserID *int64
	Code   string
	Amount float64

	// Необязательные ограничения: без них проверки даты и слотов пропускаются
	Date  *time.Time
	Slots []string
}

// Response скидка по купону
type Response struct {
	Code        string
	Discount    float64
	FinalAmount float64
}
