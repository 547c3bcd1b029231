package pricing

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrCouponNotFound возвращается, когда купон с таким кодом не существует
	ErrCouponNotFound = fmt.Errorf("%w: coupon does not exist", domain.ErrNotFound)

	// ErrCouponInactive возвращается для выключенного или просроченного купона
	ErrCouponInactive = fmt.Errorf("%w: coupon is expired or inactive", domain.ErrValidation)

	// ErrCouponUsageLimit возвращается, когда лимит использований исчерпан
	ErrCouponUsageLimit = fmt.Errorf("%w: coupon usage limit reached", domain.ErrConflict)

	// ErrCouponWrongDate возвращается, когда купон ограничен другой датой
	ErrCouponWrongDate = fmt.Errorf("%w: coupon is not valid for this date", domain.ErrValidation)

	// ErrCouponWrongSlot возвращается, когда купон ограничен другими слотами
	ErrCouponWrongSlot = fmt.Errorf("%w: coupon is not valid for the selected slots", domain.ErrValidation)

	// ErrInvalidAmount возвращается при отрицательной сумме
	ErrInvalidAmount = fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
)

// RejectionError отказ в применении купона с сообщением для клиента
type RejectionError struct {
	Err     error
	Message string
}

func (e *RejectionError) Error() string {
	return e.Err.Error() + ": " + e.Message
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

// UserMessage текст ошибки купона для клиента; пустая строка, если err не относится к купонам
func UserMessage(err error) string {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Message
	}

	switch {
	case errors.Is(err, ErrCouponNotFound):
		return "Invalid coupon code."
	case errors.Is(err, ErrCouponInactive):
		return "This coupon has expired or is inactive."
	case errors.Is(err, ErrCouponUsageLimit):
		return "Coupon usage limit reached."
	case errors.Is(err, ErrInvalidAmount):
		return "Amount must not be negative."
	default:
		return ""
	}
}
