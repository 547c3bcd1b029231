package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Result результат применения купона
type Result struct {
	Coupon      *domain.Coupon
	Discount    float64
	FinalAmount float64
}

// Check ограничения применения купона. Нулевые значения отключают проверки 4-5
type Check struct {
	BookingDate     *time.Time
	RequestedStarts []types.TimeString
}

// EvaluateCoupon проверяет купон и вычисляет скидку.
// Порядок проверок фиксирован, возвращается первая ошибка:
//  1. купон существует
//  2. активен и не просрочен
//  3. лимит использований не исчерпан
//  4. совпадает дата (если купон ограничен датой)
//  5. все слоты начинаются в разрешенное время (если купон ограничен слотами)
//
// Счетчик использований здесь не меняется
func EvaluateCoupon(coupon *domain.Coupon, amount float64, check Check, now time.Time) (*Result, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	// 1. Купон существует
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	// 2. Активен и не просрочен
	if !coupon.IsActive || coupon.IsExpired(now) {
		return nil, ErrCouponInactive
	}

	// 3. Лимит использований
	if coupon.IsUsageExhausted() {
		return nil, ErrCouponUsageLimit
	}

	// 4. Ограничение по дате (сравниваются календарные дни)
	if coupon.ValidDate != nil && check.BookingDate != nil {
		validDate := domain.DateOnly(*coupon.ValidDate)
		if !validDate.Equal(domain.DateOnly(*check.BookingDate)) {
			return nil, &RejectionError{
				Err:     ErrCouponWrongDate,
				Message: fmt.Sprintf("This coupon is only valid for %s.", domain.FormatDate(validDate)),
			}
		}
	}

	// 5. Ограничение по слотам
	if len(coupon.ValidSlots) > 0 && len(check.RequestedStarts) > 0 {
		allowed := make(map[string]struct{}, len(coupon.ValidSlots))
		for _, s := range coupon.ValidSlots {
			allowed[s] = struct{}{}
		}
		for _, start := range check.RequestedStarts {
			if _, ok := allowed[start.String()]; !ok {
				return nil, &RejectionError{
					Err:     ErrCouponWrongSlot,
					Message: "This coupon is only valid for specific slots: " + strings.Join(coupon.ValidSlots, ", "),
				}
			}
		}
	}

	// 6. Скидка
	discount := Discount(coupon, amount)
	return &Result{
		Coupon:      coupon,
		Discount:    discount,
		FinalAmount: math.Max(0, amount-discount),
	}, nil
}

// Discount размер скидки купона для суммы без проверок применимости
func Discount(coupon *domain.Coupon, amount float64) float64 {
	switch coupon.Type {
	case domain.CouponFlat:
		return coupon.Value
	case domain.CouponPercentage:
		raw := amount * coupon.Value / 100
		if coupon.MaxDiscount != nil && *coupon.MaxDiscount > 0 {
			return math.Min(raw, *coupon.MaxDiscount)
		}
		return raw
	default:
		return 0
	}
}
