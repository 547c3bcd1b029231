package bookings

import (
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/bookings/models"
)

// CancelResponse ответ на отмену брони пользователем
type CancelResponse struct {
	Message string                  `json:"message"`
	Booking *models.BookingResponse `json:"booking"`
}

// ToListRequest собирает фильтр из query: fromDate, toDate, searchName
func ToListRequest(query url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	from, err := optionalDate(query.Get("fromDate"))
	if err != nil {
		return nil, err
	}
	req.FromDate = from

	to, err := optionalDate(query.Get("toDate"))
	if err != nil {
		return nil, err
	}
	req.ToDate = to

	if name := strings.TrimSpace(query.Get("searchName")); name != "" {
		req.SearchName = &name
	}

	return req, nil
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
