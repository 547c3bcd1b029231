package models

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// Request модели

// CreateCouponRequest запрос на создание купона
type CreateCouponRequest struct {
	Code        string   `json:"code" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=FLAT PERCENTAGE"`
	Value       float64  `json:"value" validate:"required,gt=0"`
	ExpiryDate  string   `json:"expiryDate" validate:"required"`
	MaxUsage    *int     `json:"maxUsage,omitempty" validate:"omitempty,min=0"`
	MaxDiscount *float64 `json:"maxDiscount,omitempty" validate:"omitempty,min=0"`
	ValidDate   *string  `json:"validDate,omitempty"`
	ValidSlots  []string `json:"validSlots,omitempty" validate:"omitempty,dive,hhmm"`
}

// Response модели

// CouponResponse купон в административном списке
type CouponResponse struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Type         string    `json:"type"`
	Value        float64   `json:"value"`
	MaxDiscount  *float64  `json:"maxDiscount"`
	MaxUsage     *int      `json:"maxUsage"`
	TotalUsage   int       `json:"totalUsage"`
	ExpiryDate   time.Time `json:"expiryDate"`
	IsActive     bool      `json:"isActive"`
	ValidDate    *string   `json:"validDate"`
	ValidSlots   []string  `json:"validSlots"`
	BookingCount int       `json:"bookingCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromDomainCoupon конвертирует domain модель в DTO
func FromDomainCoupon(c *domain.Coupon) *CouponResponse {
	if c == nil {
		return nil
	}

	resp := &CouponResponse{
		ID:           c.ID,
		Code:         c.Code,
		Type:         string(c.Type),
		Value:        c.Value,
		MaxDiscount:  c.MaxDiscount,
		MaxUsage:     c.MaxUsage,
		TotalUsage:   c.TotalUsage,
		ExpiryDate:   c.ExpiryDate,
		IsActive:     c.IsActive,
		ValidSlots:   c.ValidSlots,
		BookingCount: c.BookingCount,
		CreatedAt:    c.CreatedAt,
	}
	if resp.ValidSlots == nil {
		resp.ValidSlots = []string{}
	}
	if c.ValidDate != nil {
		d := domain.FormatDate(*c.ValidDate)
		resp.ValidDate = &d
	}
	return resp
}

// FromDomainCoupons конвертирует список купонов
func FromDomainCoupons(list []*domain.Coupon) []*CouponResponse {
	result := make([]*CouponResponse, 0, len(list))
	for _, c := range list {
		result = append(result, FromDomainCoupon(c))
	}
	return result
}
