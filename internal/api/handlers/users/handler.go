package users

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	userService "github.com/m04kA/TurfBookingService/internal/service/users"
	"github.com/m04kA/TurfBookingService/internal/service/users/models"
)

const (
	msgInvalidUserID  = "Invalid user ID"
	msgUserNotFound   = "User not found"
	msgAlreadyInUse   = "Phone or email already in use"
	msgInvalidProfile = "Name is required"
)

// WatchmanResponse ответ на создание сторожа
type WatchmanResponse struct {
	Watchman *models.UserResponse `json:"watchman"`
}

// Handler аккаунты: список и блокировка для администратора, профиль для пользователя
type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ToggleStatus PUT /api/v1/admin/users/{id}/toggle-status
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /admin/users/{id}/toggle-status - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			h.logger.Warn("PUT /admin/users/{id}/toggle-status - User not found: id=%d", id)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("PUT /admin/users/{id}/toggle-status - Failed to toggle status: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/users/{id}/toggle-status - %s: id=%d", result.Message, id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateWatchman POST /api/v1/admin/watchman
func (h *Handler) CreateWatchman(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWatchmanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/watchman - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/watchman - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.CreateWatchman(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, userService.ErrAlreadyInUse):
			h.logger.Warn("POST /admin/watchman - Phone or email in use")
			handlers.RespondConflict(w, msgAlreadyInUse)

		case errors.Is(err, userService.ErrInvalidInput):
			h.logger.Warn("POST /admin/watchman - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/watchman - Failed to create watchman: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/watchman - Watchman created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, WatchmanResponse{Watchman: result})
}

// UpdateProfile PUT /api/v1/user/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /user/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /user/profile - Validation failed: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, userService.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, userService.ErrAlreadyInUse):
			h.logger.Warn("PUT /user/profile - Email in use: user_id=%d", userID)
			handlers.RespondConflict(w, msgAlreadyInUse)

		case errors.Is(err, userService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidProfile)

		default:
			h.logger.Error("PUT /user/profile - Failed to update profile: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /user/profile - Profile updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
