package bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	bookingService "github.com/m04kA/TurfBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "Invalid booking ID"
	msgInvalidDate      = "Invalid date, expected YYYY-MM-DD"
	msgBookingNotFound  = "Booking not found"
	msgAccessDenied     = "Not authorized to cancel this booking"
	msgCannotCancel     = "Booking is already cancelled"
	msgTooLateToCancel  = "Cancellations are only allowed at least 4 hours before the booking time."
	msgPastBooking      = "Cannot cancel a past or ongoing booking"
	msgNotActive        = "Booking is not active"
	msgCancelled        = "Booking cancelled successfully"
	msgInvalidRange     = "toDate must not be before fromDate"
)

// Handler брони: кабинет пользователя, смена сторожа, список администратора
type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetUserBookings GET /api/v1/user/bookings
func (h *Handler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /user/bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// CancelByUser POST /api/v1/user/bookings/{id}/cancel
func (h *Handler) CancelByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	bookingID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("POST /user/bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.CancelByUser(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			h.logger.Warn("POST /user/bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingService.ErrAccessDenied):
			h.logger.Warn("POST /user/bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingService.ErrCannotCancel):
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookingService.ErrTooLateToCancel):
			h.logger.Warn("POST /user/bookings/{id}/cancel - Too late: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgTooLateToCancel)

		case errors.Is(err, bookingService.ErrPastBooking):
			handlers.RespondBadRequest(w, msgPastBooking)

		default:
			h.logger.Error("POST /user/bookings/{id}/cancel - Failed to cancel: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /user/bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{Message: msgCancelled, Booking: result})
}

// GetTodayConfirmed GET /api/v1/watchman/today
func (h *Handler) GetTodayConfirmed(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetTodayConfirmed(r.Context())
	if err != nil {
		h.logger.Error("GET /watchman/today - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// MarkArrived POST /api/v1/watchman/bookings/{id}/arrive
func (h *Handler) MarkArrived(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("POST /watchman/bookings/{id}/arrive - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.MarkArrived(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			h.logger.Warn("POST /watchman/bookings/{id}/arrive - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingService.ErrNotActive):
			h.logger.Warn("POST /watchman/bookings/{id}/arrive - Booking not active: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotActive)

		default:
			h.logger.Error("POST /watchman/bookings/{id}/arrive - Failed to mark arrival: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /watchman/bookings/{id}/arrive - Arrival marked: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/admin/bookings?fromDate=&toDate=&searchName=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req, err := ToListRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingService.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
