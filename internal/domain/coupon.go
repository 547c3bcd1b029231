package domain

import "time"

// CouponType тип скидки
type CouponType string

const (
	CouponFlat       CouponType = "FLAT"
	CouponPercentage CouponType = "PERCENTAGE"
)

// IsValid проверяет, что тип купона известен
func (t CouponType) IsValid() bool {
	return t == CouponFlat || t == CouponPercentage
}

// Coupon купон на скидку
type Coupon struct {
	ID          int64
	Code        string // хранится в верхнем регистре, сравнение без учета регистра
	Type        CouponType
	Value       float64
	MaxDiscount *float64 // ограничение скидки для PERCENTAGE
	MaxUsage    *int
	TotalUsage  int // растет только при подтверждении оплаты
	ExpiryDate  time.Time
	IsActive    bool
	ValidDate   *time.Time // ограничение одной датой
	ValidSlots  []string   // ограничение временем начала слотов ("HH:MM")
	CreatedAt   time.Time

	// BookingCount заполняется только в административном списке
	BookingCount int
}

// IsExpired возвращает true, если срок действия купона истек
func (c *Coupon) IsExpired(now time.Time) bool {
	return now.After(c.ExpiryDate)
}

// IsUsageExhausted возвращает true, если лимит использований исчерпан
func (c *Coupon) IsUsageExhausted() bool {
	return c.MaxUsage != nil && *c.MaxUsage > 0 && c.TotalUsage >= *c.MaxUsage
}
