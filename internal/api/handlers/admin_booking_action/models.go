package admin_booking_action

import (
	bookingModels "github.com/m04kA/TurfBookingService/internal/service/bookings/models"
	adminBookingAction "github.com/m04kA/TurfBookingService/internal/usecase/admin_booking_action"
)

// BookingActionRequest HTTP request model: повторный ввод пароля администратора
type BookingActionRequest struct {
	Password string `json:"password"`
}

// BookingActionResponse HTTP response model
type BookingActionResponse struct {
	Message string                         `json:"message"`
	Booking *bookingModels.BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookingActionRequest) ToUseCaseRequest(adminID, bookingID int64, action adminBookingAction.Action) *adminBookingAction.Request {
	return &adminBookingAction.Request{
		AdminID:   adminID,
		BookingID: bookingID,
		Password:  r.Password,
		Action:    action,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *adminBookingAction.Response) BookingActionResponse {
	return BookingActionResponse{
		Message: resp.Message,
		Booking: bookingModels.FromDomainReservationWithOwner(resp.Booking),
	}
}
