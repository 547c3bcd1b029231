package verify_payment

import (
	bookingModels "github.com/m04kA/TurfBookingService/internal/service/bookings/models"
	verifyPayment "github.com/m04kA/TurfBookingService/internal/usecase/verify_payment"
)

// VerifyPaymentRequest HTTP request model, поля как их отдает checkout Razorpay
type VerifyPaymentRequest struct {
	OrderID    string  `json:"razorpay_order_id" validate:"required"`
	PaymentID  string  `json:"razorpay_payment_id" validate:"required"`
	Signature  string  `json:"razorpay_signature" validate:"required"`
	BookingID  *int64  `json:"bookingId,omitempty"`
	BookingIDs []int64 `json:"bookingIds,omitempty"`
}

// VerifyPaymentResponse HTTP response model
type VerifyPaymentResponse struct {
	Message  string                          `json:"message"`
	Bookings []bookingModels.BookingResponse `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Одиночный bookingId старых клиентов добавляется к списку
func (r *VerifyPaymentRequest) ToUseCaseRequest() *verifyPayment.Request {
	ids := append([]int64(nil), r.BookingIDs...)
	if r.BookingID != nil {
		ids = append(ids, *r.BookingID)
	}

	return &verifyPayment.Request{
		OrderID:    r.OrderID,
		PaymentID:  r.PaymentID,
		Signature:  r.Signature,
		BookingIDs: ids,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *verifyPayment.Response, message string) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Message:  message,
		Bookings: bookingModels.FromDomainReservationWithOwnerList(resp.Bookings),
	}
}
