package venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/domain"
	venueService "github.com/m04kA/TurfBookingService/internal/service/venue"
)

const (
	msgSettingsUpdated = "Settings updated successfully"
	msgNoSettings      = "No settings provided"
	msgReservedKey     = "Pricing keys are managed on the pricing page"
	msgMissingDate     = "Date is required"
	msgInvalidDate     = "Invalid date, expected YYYY-MM-DD"
)

// Handler публичная информация о площадке, настройки и цены для администратора
type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetTurfInfo GET /api/v1/public/info
func (h *Handler) GetTurfInfo(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetTurfInfo(r.Context())
	if err != nil {
		h.logger.Error("GET /public/info - Failed to get turf info: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetSettings GET /api/v1/public/settings и GET /api/v1/admin/settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetPublicSettings(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateSettings POST /api/v1/admin/settings
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateSettings(r.Context(), req.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, venueService.ErrReservedKey):
			h.logger.Warn("POST /admin/settings - Reserved key: %v", err)
			handlers.RespondBadRequest(w, msgReservedKey)

		case errors.Is(err, venueService.ErrInvalidInput):
			h.logger.Warn("POST /admin/settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNoSettings)

		default:
			h.logger.Error("POST /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/settings - Settings updated: keys=%d", len(req))
	handlers.RespondMessage(w, http.StatusOK, msgSettingsUpdated)
}

// GetPricingView GET /api/v1/admin/pricing?date=YYYY-MM-DD
func (h *Handler) GetPricingView(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /admin/pricing - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/pricing - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetPricingView(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/pricing - Failed to get pricing: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetBlockLogs GET /api/v1/admin/pricing/logs
func (h *Handler) GetBlockLogs(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetBlockLogs(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/pricing/logs - Failed to get logs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ImportLegacyPricing POST /api/v1/admin/pricing/import-legacy
func (h *Handler) ImportLegacyPricing(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ImportLegacyPricing(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/pricing/import-legacy - Import failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/pricing/import-legacy - Imported: dates=%d, overrides=%d, skipped=%d",
		result.Dates, result.Overrides, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, result)
}
