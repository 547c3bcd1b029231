package force_block

import (
	"github.com/m04kA/TurfBookingService/internal/domain"
	forceBlock "github.com/m04kA/TurfBookingService/internal/usecase/force_block"
)

// ForceBlockRequest HTTP request model
type ForceBlockRequest struct {
	Date      string `json:"date" validate:"required,date"`
	Slot      string `json:"slot" validate:"required,slot"`
	IsBlocked bool   `json:"isBlocked"`
}

// ForceBlockResponse HTTP response model
type ForceBlockResponse struct {
	Message        string `json:"message"`
	Action         string `json:"action"`
	CancelledCount int64  `json:"cancelledCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ForceBlockRequest) ToUseCaseRequest(adminName string) (*forceBlock.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &forceBlock.Request{
		Date:      date,
		Slot:      r.Slot,
		IsBlocked: r.IsBlocked,
		AdminName: adminName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *forceBlock.Response) ForceBlockResponse {
	return ForceBlockResponse{
		Message:        resp.Message,
		Action:         string(resp.Action),
		CancelledCount: resp.CancelledCount,
	}
}
