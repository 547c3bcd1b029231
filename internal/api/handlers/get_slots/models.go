package get_slots

import (
	"github.com/m04kA/TurfBookingService/internal/domain"
	getSlots "github.com/m04kA/TurfBookingService/internal/usecase/get_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Price          float64 `json:"price"`
	IsBooked       bool    `json:"isBooked"`
	IsHardBooked   bool    `json:"isHardBooked"`
	IsAdminBlocked bool    `json:"isAdminBlocked"`
	IsPastSlot     bool    `json:"isPastSlot"`
}

// SlotsResponse HTTP ответ со списком слотов
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// ToUseCaseRequest парсит дату из query
func ToUseCaseRequest(date string) (*getSlots.Request, error) {
	parsed, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return &getSlots.Request{Date: parsed}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getSlots.Response) SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:      s.StartTime.String(),
			EndTime:        s.EndTime.String(),
			Price:          s.Price,
			IsBooked:       s.IsBooked,
			IsHardBooked:   s.IsHardBooked,
			IsAdminBlocked: s.IsAdminBlocked,
			IsPastSlot:     s.IsPastSlot,
		})
	}
	return SlotsResponse{
		Date:  domain.FormatDate(resp.Date),
		Slots: slots,
	}
}
