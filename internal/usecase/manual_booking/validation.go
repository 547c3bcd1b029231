package manual_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// validateRequest проверяет обязательные поля и интервал
func validateRequest(req *Request) (domain.Interval, error) {
	if req.Date.IsZero() {
		return domain.Interval{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Sport) == "" {
		return domain.Interval{}, fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	interval := domain.Interval{Start: req.StartTime, End: req.EndTime}
	if err := interval.Validate(); err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return interval, nil
}
