package save_pricing

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	savePricing "github.com/m04kA/TurfBookingService/internal/usecase/save_pricing"
)

const (
	msgInvalidDate      = "Invalid date, expected YYYY-MM-DD"
	msgInvalidOverrides = "Overrides must be 1-hour slots with non-negative prices"
)

type Handler struct {
	useCase SavePricingUseCase
	logger  Logger
}

func NewHandler(useCase SavePricingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SavePricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/pricing - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/pricing - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, savePricing.ErrInvalidInput) {
			h.logger.Warn("POST /admin/pricing - Invalid overrides: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidOverrides)
			return
		}
		h.logger.Error("POST /admin/pricing - Failed to save pricing: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/pricing - Pricing saved: date=%s, days=%d", req.Date, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
