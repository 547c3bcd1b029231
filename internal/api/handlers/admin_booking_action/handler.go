package admin_booking_action

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	adminBookingAction "github.com/m04kA/TurfBookingService/internal/usecase/admin_booking_action"
)

const (
	msgInvalidBookingID = "Invalid booking ID"
	msgPasswordRequired = "Admin password required"
	msgUnauthorized     = "Unauthorized"
	msgInvalidPassword  = "Invalid password"
	msgBookingNotFound  = "Booking not found"
	msgPastBooking      = "Cannot modify past bookings"
	msgAlreadyRefunded  = "Booking already refunded"
	msgRefundFailed     = "Razorpay refund failed"
)

// Handler отмена и возврат брони администратором. Один обработчик на оба действия
type Handler struct {
	useCase AdminBookingActionUseCase
	action  adminBookingAction.Action
	logger  Logger
}

func NewHandler(useCase AdminBookingActionUseCase, action adminBookingAction.Action, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		action:  action,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/bookings/{id}/cancel и PUT /api/v1/admin/bookings/{id}/refund
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	route := h.route()

	bookingID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid booking ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	var req BookingActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: booking_id=%d, error=%v", route, bookingID, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(adminID, bookingID, h.action))
	if err != nil {
		switch {
		case errors.Is(err, adminBookingAction.ErrPasswordRequired):
			handlers.RespondBadRequest(w, msgPasswordRequired)

		case errors.Is(err, adminBookingAction.ErrUnauthorized):
			h.logger.Warn("%s - Admin not found: admin_id=%d", route, adminID)
			handlers.RespondForbidden(w, msgUnauthorized)

		case errors.Is(err, adminBookingAction.ErrInvalidPassword):
			h.logger.Warn("%s - Invalid password: admin_id=%d, booking_id=%d", route, adminID, bookingID)
			handlers.RespondForbidden(w, msgInvalidPassword)

		case errors.Is(err, adminBookingAction.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: booking_id=%d", route, bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, adminBookingAction.ErrPastBooking):
			h.logger.Warn("%s - Past booking: booking_id=%d", route, bookingID)
			handlers.RespondBadRequest(w, msgPastBooking)

		case errors.Is(err, adminBookingAction.ErrAlreadyRefunded):
			h.logger.Warn("%s - Already refunded: booking_id=%d", route, bookingID)
			handlers.RespondConflict(w, msgAlreadyRefunded)

		case errors.Is(err, adminBookingAction.ErrRefundFailed):
			h.logger.Error("%s - Refund failed: booking_id=%d, error=%v", route, bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgRefundFailed)

		default:
			h.logger.Error("%s - Failed to process booking: booking_id=%d, error=%v", route, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Done: booking_id=%d, admin_id=%d", route, bookingID, adminID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) route() string {
	if h.action == adminBookingAction.ActionRefund {
		return "PUT /admin/bookings/{id}/refund"
	}
	return "PUT /admin/bookings/{id}/cancel"
}
