package save_pricing

import (
	"fmt"
	"math"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// validateRequest проверяет запрос и приводит слоты к каноническому виду
func validateRequest(req *Request) ([]domain.PricingOverride, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if len(req.Entries) == 0 && !req.Replace {
		return nil, fmt.Errorf("%w: overrides are required", ErrInvalidInput)
	}

	entries := make([]domain.PricingOverride, 0, len(req.Entries))
	for _, e := range req.Entries {
		interval, err := domain.ParseHourSlotKey(e.Slot)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if e.Price < 0 || math.IsNaN(e.Price) || math.IsInf(e.Price, 0) {
			return nil, fmt.Errorf("%w: price for %s must not be negative", ErrInvalidInput, interval.Key())
		}
		entries = append(entries, domain.PricingOverride{
			Slot:      interval.Key(),
			Price:     e.Price,
			IsBlocked: e.IsBlocked,
		})
	}

	return entries, nil
}
