package initiate_booking

import (
	"strings"

	"github.com/m04kA/TurfBookingService/internal/domain"
	initiateBooking "github.com/m04kA/TurfBookingService/internal/usecase/initiate_booking"
)

// InitiateBookingRequest HTTP request model.
// Слоты передаются списком "HH:MM-HH:MM" либо одной парой startTime/endTime
type InitiateBookingRequest struct {
	Date       string   `json:"date" validate:"required,date"`
	Slots      []string `json:"slots" validate:"omitempty,max=24,dive,slot"`
	StartTime  string   `json:"startTime" validate:"omitempty,hhmm"`
	EndTime    string   `json:"endTime" validate:"omitempty,hhmm"`
	Sport      string   `json:"sport" validate:"max=50"`
	Amount     float64  `json:"amount" validate:"min=0"`
	GuestName  *string  `json:"guestName,omitempty" validate:"omitempty,max=100"`
	GuestPhone *string  `json:"guestPhone,omitempty" validate:"omitempty,max=20"`
	GuestEmail *string  `json:"guestEmail,omitempty" validate:"omitempty,email"`
	CouponCode *string  `json:"couponCode,omitempty"`
	// старое имя поля кода купона
	CouponID *string `json:"couponId,omitempty"`
}

// OrderResponse заказ платежного шлюза для checkout на клиенте
type OrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// InitiateBookingResponse HTTP response model
type InitiateBookingResponse struct {
	Order       OrderResponse `json:"order"`
	KeyID       string        `json:"keyId"`
	BookingIDs  []int64       `json:"bookingIds"`
	Subtotal    float64       `json:"subtotal"`
	Discount    float64       `json:"discount"`
	FinalAmount float64       `json:"finalAmount"`
}

// SlotKeys возвращает запрошенные слоты
func (r *InitiateBookingRequest) SlotKeys() []string {
	if len(r.Slots) > 0 {
		return r.Slots
	}
	if r.StartTime != "" && r.EndTime != "" {
		return []string{r.StartTime + "-" + r.EndTime}
	}
	return nil
}

func (r *InitiateBookingRequest) couponCode() *string {
	for _, code := range []*string{r.CouponCode, r.CouponID} {
		if code != nil && strings.TrimSpace(*code) != "" {
			return code
		}
	}
	return nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *InitiateBookingRequest) ToUseCaseRequest(userID *int64) (*initiateBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &initiateBooking.Request{
		UserID:     userID,
		Date:       date,
		Slots:      r.SlotKeys(),
		Sport:      strings.TrimSpace(r.Sport),
		Amount:     r.Amount,
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		GuestEmail: r.GuestEmail,
		CouponCode: r.couponCode(),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *initiateBooking.Response) InitiateBookingResponse {
	return InitiateBookingResponse{
		Order: OrderResponse{
			ID:       resp.OrderID,
			Amount:   resp.AmountPaise,
			Currency: resp.Currency,
			Receipt:  resp.Receipt,
		},
		KeyID:       resp.KeyID,
		BookingIDs:  resp.BookingIDs,
		Subtotal:    resp.Subtotal,
		Discount:    resp.Discount,
		FinalAmount: resp.FinalAmount,
	}
}
