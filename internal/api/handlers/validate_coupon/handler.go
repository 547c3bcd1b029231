package validate_coupon

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	"github.com/m04kA/TurfBookingService/internal/service/pricing"
	validateCoupon "github.com/m04kA/TurfBookingService/internal/usecase/validate_coupon"
)

const (
	msgApplied       = "Coupon applied successfully"
	msgLoginRequired = "You must be logged in to apply a coupon code."
	msgInvalidDate   = "Invalid date, expected YYYY-MM-DD"
	msgInvalidInput  = "Coupon code and amount are required."
)

type Handler struct {
	useCase ValidateCouponUseCase
	logger  Logger
}

func NewHandler(useCase ValidateCouponUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate-coupon
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/validate-coupon - Anonymous request")
		handlers.RespondUnauthorized(w, msgLoginRequired)
		return
	}

	var req ValidateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate-coupon - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/validate-coupon - Validation failed: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(&userID)
	if err != nil {
		h.logger.Warn("POST /bookings/validate-coupon - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if msg := pricing.UserMessage(err); msg != "" {
			h.logger.Warn("POST /bookings/validate-coupon - Coupon rejected: user_id=%d, code=%q, error=%v",
				userID, req.CouponCode, err)
			handlers.RespondError(w, handlers.StatusFromError(err), msg)
			return
		}

		switch {
		case errors.Is(err, validateCoupon.ErrLoginRequired):
			handlers.RespondUnauthorized(w, msgLoginRequired)

		case errors.Is(err, validateCoupon.ErrInvalidInput):
			h.logger.Warn("POST /bookings/validate-coupon - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/validate-coupon - Failed to validate coupon: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgApplied))
}
