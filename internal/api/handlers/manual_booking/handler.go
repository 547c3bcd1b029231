package manual_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	bookingModels "github.com/m04kA/TurfBookingService/internal/service/bookings/models"
	manualBooking "github.com/m04kA/TurfBookingService/internal/usecase/manual_booking"
)

const (
	msgInvalidDate     = "Invalid date, expected YYYY-MM-DD"
	msgInvalidInterval = "Start time must be before end time"
	msgSlotUnavailable = "One or more selected slots are already booked."
)

type Handler struct {
	useCase ManualBookingUseCase
	logger  Logger
}

func NewHandler(useCase ManualBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/manual
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ManualBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/manual - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/bookings/manual - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/bookings/manual - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, manualBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /admin/bookings/manual - Overlap: date=%s, %s-%s", req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, manualBooking.ErrInvalidInput):
			h.logger.Warn("POST /admin/bookings/manual - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("POST /admin/bookings/manual - Failed to create booking: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/manual - Booking created: booking_id=%d, date=%s",
		result.Reservation.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, bookingModels.FromDomainReservation(result.Reservation))
}
