package coupons

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	couponService "github.com/m04kA/TurfBookingService/internal/service/coupons"
	"github.com/m04kA/TurfBookingService/internal/service/coupons/models"
)

const (
	msgInvalidCouponID = "Invalid coupon ID"
	msgInvalidCoupon   = "Code, type, value, and expiryDate are required."
	msgDuplicateCode   = "Coupon code already exists."
	msgCouponNotFound  = "Coupon not found"
	msgCouponDeleted   = "Coupon deleted successfully"
)

// Handler управление купонами администратором
type Handler struct {
	service CouponService
	logger  Logger
}

func NewHandler(service CouponService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/coupons
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/coupons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/coupons - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, couponService.ErrDuplicateCode):
			h.logger.Warn("POST /admin/coupons - Duplicate code %q", req.Code)
			handlers.RespondConflict(w, msgDuplicateCode)

		case errors.Is(err, couponService.ErrInvalidInput):
			h.logger.Warn("POST /admin/coupons - Invalid coupon: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCoupon)

		default:
			h.logger.Error("POST /admin/coupons - Failed to create coupon: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/coupons - Coupon created: id=%d, code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/admin/coupons
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/coupons - Failed to list coupons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/coupons/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/coupons/{id} - Invalid coupon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCouponID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, couponService.ErrCouponNotFound) {
			h.logger.Warn("DELETE /admin/coupons/{id} - Coupon not found: id=%d", id)
			handlers.RespondNotFound(w, msgCouponNotFound)
			return
		}
		h.logger.Error("DELETE /admin/coupons/{id} - Failed to delete coupon: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/coupons/{id} - Coupon deleted: id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgCouponDeleted)
}
