package initiate_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	"github.com/m04kA/TurfBookingService/internal/service/pricing"
	initiateBooking "github.com/m04kA/TurfBookingService/internal/usecase/initiate_booking"
)

const (
	msgMissingSlots       = "Must provide slots or startTime and endTime"
	msgInvalidDate        = "Invalid date, expected YYYY-MM-DD"
	msgInvalidBooking     = "Invalid booking request"
	msgUnknownSlot        = "Selected slot is not available on this date"
	msgSlotInPast         = "Selected slot is already in the past"
	msgSlotBlocked        = "Selected slot is blocked by the venue"
	msgSlotUnavailable    = "One or more selected slots are already booked or currently being paid for."
	msgAmountMismatch     = "Price has changed, please refresh the slot list"
	msgLoginRequired      = "You must be logged in to use a coupon code."
	msgPaymentUnavailable = "Payment gateway is unavailable, please try again"
)

type Handler struct {
	useCase InitiateBookingUseCase
	logger  Logger
}

func NewHandler(useCase InitiateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/initiate
// Доступен гостям; для вошедшего пользователя бронь привязывается к аккаунту
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InitiateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/initiate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if len(req.SlotKeys()) == 0 {
		h.logger.Warn("POST /bookings/initiate - No slots in request")
		handlers.RespondBadRequest(w, msgMissingSlots)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/initiate - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/initiate - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if msg := pricing.UserMessage(err); msg != "" {
			h.logger.Warn("POST /bookings/initiate - Coupon rejected: date=%s, error=%v", req.Date, err)
			handlers.RespondError(w, handlers.StatusFromError(err), msg)
			return
		}

		switch {
		case errors.Is(err, initiateBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings/initiate - Slots unavailable: date=%s, slots=%v", req.Date, req.SlotKeys())
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, initiateBooking.ErrSlotBlocked):
			h.logger.Warn("POST /bookings/initiate - Slot blocked: date=%s, slots=%v", req.Date, req.SlotKeys())
			handlers.RespondConflict(w, msgSlotBlocked)

		case errors.Is(err, initiateBooking.ErrUnknownSlot):
			h.logger.Warn("POST /bookings/initiate - Unknown slot: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, initiateBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings/initiate - Slot in the past: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, initiateBooking.ErrAmountMismatch):
			h.logger.Warn("POST /bookings/initiate - Amount mismatch: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgAmountMismatch)

		case errors.Is(err, initiateBooking.ErrLoginRequired):
			h.logger.Warn("POST /bookings/initiate - Coupon without login")
			handlers.RespondUnauthorized(w, msgLoginRequired)

		case errors.Is(err, initiateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/initiate - Invalid booking: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, initiateBooking.ErrPaymentGateway):
			h.logger.Error("POST /bookings/initiate - Payment gateway failed: date=%s, error=%v", req.Date, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /bookings/initiate - Failed to initiate booking: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/initiate - Checkout created: order=%s, bookings=%v", result.OrderID, result.BookingIDs)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
