package initiate_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/availability"
)

// validateRequest проверяет запрос и возвращает разобранные интервалы
func validateRequest(req *Request) ([]domain.Interval, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Slots) == 0 {
		return nil, fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}
	if len(req.Slots) > domain.MaxSlotsPerBooking {
		return nil, fmt.Errorf("%w: too many slots", ErrInvalidInput)
	}

	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	if req.UserID == nil {
		if isBlank(req.GuestName) || isBlank(req.GuestPhone) {
			return nil, fmt.Errorf("%w: guest name and phone are required", ErrInvalidInput)
		}
	}

	intervals := make([]domain.Interval, 0, len(req.Slots))
	for _, key := range req.Slots {
		interval, err := domain.ParseSlotKey(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		intervals = append(intervals, interval)
	}

	if availability.HasSelfOverlap(intervals) {
		return nil, fmt.Errorf("%w: selected slots overlap each other", ErrInvalidInput)
	}

	return intervals, nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func hasCoupon(req *Request) bool {
	return !isBlank(req.CouponCode)
}
