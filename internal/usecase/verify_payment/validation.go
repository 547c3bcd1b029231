package verify_payment

import (
	"fmt"
	"strings"
)

// validateRequest проверяет запрос и возвращает ID броней без повторов
func validateRequest(req *Request) ([]int64, error) {
	if strings.TrimSpace(req.OrderID) == "" || strings.TrimSpace(req.PaymentID) == "" || strings.TrimSpace(req.Signature) == "" {
		return nil, fmt.Errorf("%w: order id, payment id and signature are required", ErrInvalidInput)
	}

	if len(req.BookingIDs) == 0 {
		return nil, fmt.Errorf("%w: booking ids are required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.BookingIDs))
	ids := make([]int64, 0, len(req.BookingIDs))
	for _, id := range req.BookingIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: invalid booking id %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}
