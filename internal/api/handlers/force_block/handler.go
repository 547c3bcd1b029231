package force_block

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	forceBlock "github.com/m04kA/TurfBookingService/internal/usecase/force_block"
)

const (
	msgInvalidDate      = "Invalid date, expected YYYY-MM-DD"
	msgInvalidSlot      = "Slot must be a 1-hour slot in HH:MM-HH:MM format"
	msgConcurrentUpdate = "Slot is being modified, please retry"

	// имя в журнале, если администратора не удалось найти
	defaultAdminName = "Admin"
)

type Handler struct {
	useCase ForceBlockUseCase
	admins  AdminDirectory
	logger  Logger
}

func NewHandler(useCase ForceBlockUseCase, admins AdminDirectory, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		admins:  admins,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/pricing/force-toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ForceBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/pricing/force-toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/pricing/force-toggle - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.adminName(r.Context()))
	if err != nil {
		h.logger.Warn("POST /admin/pricing/force-toggle - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, forceBlock.ErrInvalidInput):
			h.logger.Warn("POST /admin/pricing/force-toggle - Invalid input: date=%s, slot=%s, error=%v", req.Date, req.Slot, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, forceBlock.ErrConcurrentUpdate):
			h.logger.Warn("POST /admin/pricing/force-toggle - Concurrent update: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /admin/pricing/force-toggle - Failed to toggle slot: date=%s, slot=%s, error=%v",
				req.Date, req.Slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/pricing/force-toggle - Slot %s: date=%s, slot=%s, cancelled=%d",
		result.Action, req.Date, req.Slot, result.CancelledCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) adminName(ctx context.Context) string {
	id, ok := middleware.GetUserID(ctx)
	if !ok || h.admins == nil {
		return defaultAdminName
	}
	admin, err := h.admins.GetByID(ctx, id)
	if err != nil || admin == nil || admin.Name == "" {
		return defaultAdminName
	}
	return admin.Name
}
