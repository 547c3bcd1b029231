package models

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// Request модели

// ListRequest фильтр административного списка
type ListRequest struct {
	FromDate   *time.Time
	ToDate     *time.Time
	SearchName *string
}

// Response модели

// OwnerResponse данные владельца брони
type OwnerResponse struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// BookingResponse ответ с данными брони
type BookingResponse struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "18:00"
	EndTime     string  `json:"endTime"`   // "19:00"
	Status      string  `json:"status"`
	Sport       string  `json:"sport"`
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
	PaymentID   *string `json:"paymentId,omitempty"`
	CouponID    *int64  `json:"couponId,omitempty"`
	IsRefunded  bool    `json:"isRefunded"`
	IsArrived   bool    `json:"isArrived"`

	UserID     *int64  `json:"userId,omitempty"`
	GuestName  *string `json:"guestName,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`

	User *OwnerResponse `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *BookingResponse {
	if r == nil {
		return nil
	}

	return &BookingResponse{
		ID:          r.ID,
		Date:        domain.FormatDate(r.Date),
		StartTime:   r.StartTime.String(),
		EndTime:     r.EndTime.String(),
		Status:      string(r.Status),
		Sport:       r.Sport,
		Amount:      r.Amount,
		PaymentMode: string(r.PaymentMode),
		PaymentID:   r.PaymentID,
		CouponID:    r.CouponID,
		IsRefunded:  r.IsRefunded,
		IsArrived:   r.IsArrived,
		UserID:      r.UserID,
		GuestName:   r.GuestName,
		GuestPhone:  r.GuestPhone,
		GuestEmail:  r.GuestEmail,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainReservationWithOwner добавляет данные зарегистрированного владельца
func FromDomainReservationWithOwner(r *domain.ReservationWithOwner) *BookingResponse {
	if r == nil {
		return nil
	}

	resp := FromDomainReservation(&r.Reservation)
	if r.UserID != nil {
		resp.User = &OwnerResponse{Name: r.OwnerName, Phone: r.OwnerPhone, Email: r.OwnerEmail}
	}
	return resp
}

// FromDomainReservationList конвертирует список броней
func FromDomainReservationList(list []*domain.Reservation) []BookingResponse {
	result := make([]BookingResponse, 0, len(list))
	for _, r := range list {
		result = append(result, *FromDomainReservation(r))
	}
	return result
}

// FromDomainReservationWithOwnerList конвертирует список броней с владельцами
func FromDomainReservationWithOwnerList(list []*domain.ReservationWithOwner) []BookingResponse {
	result := make([]BookingResponse, 0, len(list))
	for _, r := range list {
		result = append(result, *FromDomainReservationWithOwner(r))
	}
	return result
}
