package save_pricing

import (
	"github.com/m04kA/TurfBookingService/internal/domain"
	savePricing "github.com/m04kA/TurfBookingService/internal/usecase/save_pricing"
)

// OverrideRequest переопределение одного слота
type OverrideRequest struct {
	Slot      string  `json:"slot" validate:"required,slot"`
	Price     float64 `json:"price" validate:"min=0"`
	IsBlocked bool    `json:"isBlocked"`
}

// SavePricingRequest HTTP request model
type SavePricingRequest struct {
	Date         string            `json:"date" validate:"required,date"`
	Overrides    []OverrideRequest `json:"overrides" validate:"dive"`
	ApplyForward bool              `json:"applyForward"`
	Replace      bool              `json:"replace"`
}

// SavePricingResponse HTTP response model
type SavePricingResponse struct {
	Message string   `json:"message"`
	Dates   []string `json:"dates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SavePricingRequest) ToUseCaseRequest() (*savePricing.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	entries := make([]savePricing.Entry, 0, len(r.Overrides))
	for _, o := range r.Overrides {
		entries = append(entries, savePricing.Entry{
			Slot:      o.Slot,
			Price:     o.Price,
			IsBlocked: o.IsBlocked,
		})
	}

	return &savePricing.Request{
		Date:         date,
		Entries:      entries,
		ApplyForward: r.ApplyForward,
		Replace:      r.Replace,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *savePricing.Response) SavePricingResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, domain.FormatDate(d))
	}
	return SavePricingResponse{Message: resp.Message, Dates: dates}
}
