package manual_booking

import (
	"strings"

	"github.com/m04kA/TurfBookingService/internal/domain"
	manualBooking "github.com/m04kA/TurfBookingService/internal/usecase/manual_booking"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// ManualBookingRequest HTTP request model
type ManualBookingRequest struct {
	Date       string  `json:"date" validate:"required,date"`
	StartTime  string  `json:"startTime" validate:"required,hhmm"`
	EndTime    string  `json:"endTime" validate:"required,hhmm"`
	Sport      string  `json:"sport" validate:"required,max=50"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	GuestName  *string `json:"guestName,omitempty" validate:"omitempty,max=100"`
	GuestPhone *string `json:"guestPhone,omitempty" validate:"omitempty,max=20"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ManualBookingRequest) ToUseCaseRequest() (*manualBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &manualBooking.Request{
		Date:       date,
		StartTime:  types.TimeString(r.StartTime),
		EndTime:    types.TimeString(r.EndTime),
		Sport:      strings.TrimSpace(r.Sport),
		Amount:     r.Amount,
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
	}, nil
}
