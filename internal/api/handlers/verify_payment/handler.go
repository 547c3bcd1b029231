package verify_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	verifyPayment "github.com/m04kA/TurfBookingService/internal/usecase/verify_payment"
)

const (
	msgVerified         = "Payment verified successfully"
	msgAlreadyVerified  = "Payment already verified"
	msgMissingBookings  = "bookingIds is required"
	msgInvalidSignature = "Invalid signature sent!"
	msgBookingsNotFound = "Bookings not found"
	msgBookingsExpired  = "Booking hold has expired, please contact the venue for a refund"
	msgOrderMismatch    = "Bookings do not belong to this payment order"
)

type Handler struct {
	useCase VerifyPaymentUseCase
	logger  Logger
}

func NewHandler(useCase VerifyPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/verify - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq := req.ToUseCaseRequest()
	if len(useCaseReq.BookingIDs) == 0 {
		h.logger.Warn("POST /bookings/verify - No booking ids: order=%s", req.OrderID)
		handlers.RespondBadRequest(w, msgMissingBookings)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, verifyPayment.ErrInvalidSignature):
			h.logger.Warn("POST /bookings/verify - Invalid signature: order=%s, payment=%s", req.OrderID, req.PaymentID)
			handlers.RespondBadRequest(w, msgInvalidSignature)

		case errors.Is(err, verifyPayment.ErrBookingsNotFound):
			h.logger.Warn("POST /bookings/verify - Bookings not found: ids=%v", useCaseReq.BookingIDs)
			handlers.RespondNotFound(w, msgBookingsNotFound)

		case errors.Is(err, verifyPayment.ErrBookingsExpired):
			// платеж прошел, но бронь уже не держится: нужен ручной возврат
			h.logger.Error("POST /bookings/verify - Paid for expired hold: order=%s, payment=%s, ids=%v",
				req.OrderID, req.PaymentID, useCaseReq.BookingIDs)
			handlers.RespondConflict(w, msgBookingsExpired)

		case errors.Is(err, verifyPayment.ErrOrderMismatch):
			h.logger.Warn("POST /bookings/verify - Order mismatch: order=%s, payment=%s, ids=%v",
				req.OrderID, req.PaymentID, useCaseReq.BookingIDs)
			handlers.RespondConflict(w, msgOrderMismatch)

		case errors.Is(err, verifyPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/verify - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/verify - Failed to verify payment: order=%s, error=%v", req.OrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgVerified
	if result.AlreadyConfirmed {
		message = msgAlreadyVerified
	}

	h.logger.Info("POST /bookings/verify - Payment verified: order=%s, payment=%s, bookings=%d",
		req.OrderID, req.PaymentID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, message))
}
