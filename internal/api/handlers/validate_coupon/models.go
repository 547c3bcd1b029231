package validate_coupon

import (
	"strings"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	validateCoupon "github.com/m04kA/TurfBookingService/internal/usecase/validate_coupon"
)

// ValidateCouponRequest HTTP request model
type ValidateCouponRequest struct {
	CouponCode string   `json:"couponCode" validate:"required,max=50"`
	Amount     float64  `json:"amount" validate:"min=0"`
	Date       string   `json:"date,omitempty" validate:"omitempty,date"`
	Slots      []string `json:"slots,omitempty" validate:"omitempty,dive,slot"`
}

// ValidateCouponResponse HTTP response model
type ValidateCouponResponse struct {
	Message     string  `json:"message"`
	Discount    float64 `json:"discount"`
	FinalAmount float64 `json:"finalAmount"`
	CouponID    string  `json:"couponId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateCouponRequest) ToUseCaseRequest(userID *int64) (*validateCoupon.Request, error) {
	var date *time.Time
	if r.Date != "" {
		parsed, err := domain.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		date = &parsed
	}

	return &validateCoupon.Request{
		UserID: userID,
		Code:   strings.TrimSpace(r.CouponCode),
		Amount: r.Amount,
		Date:   date,
		Slots:  r.Slots,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *validateCoupon.Response, message string) ValidateCouponResponse {
	return ValidateCouponResponse{
		Message:     message,
		Discount:    resp.Discount,
		FinalAmount: resp.FinalAmount,
		CouponID:    resp.Code,
	}
}
