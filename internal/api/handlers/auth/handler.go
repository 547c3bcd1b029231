package auth

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	"github.com/m04kA/TurfBookingService/internal/infra/cache/otp"
	authService "github.com/m04kA/TurfBookingService/internal/service/auth"
	"github.com/m04kA/TurfBookingService/internal/service/auth/models"
)

const (
	msgOTPSent            = "OTP sent successfully"
	msgEmailOTPSent       = "OTP sent to your email"
	msgEmailVerified      = "Email verified successfully"
	msgPasswordReset      = "Password reset successfully"
	msgInvalidCredentials = "Invalid credentials"
	msgAccountBlocked     = "Your account has been blocked. Contact admin."
	msgRoleDenied         = "Access denied for this role"
	msgEmailNotVerified   = "Email is not verified. Log in using phone OTP and verify your email in your profile first."
	msgUserExists         = "User already exists with this phone or email"
	msgUserNotFound       = "No account found"
	msgNoEmail            = "No email found on profile"
	msgInvalidOTP         = "Invalid or expired OTP"
	msgTooManyAttempts    = "Too many attempts, request a new code"
	msgOTPUnavailable     = "OTP service is not configured"
	msgOTPDelivery        = "Failed to send OTP"
	msgInvalidInput       = "Missing required fields"
)

// Handler обработчики /api/v1/auth
type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// SendRegisterOTP POST /api/v1/auth/send-otp
func (h *Handler) SendRegisterOTP(w http.ResponseWriter, r *http.Request) {
	const route = "POST /auth/send-otp"

	var req models.SendOTPRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	if err := h.service.SendRegisterOTP(r.Context(), req.Phone); err != nil {
		h.respondError(w, route, err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, msgOTPSent)
}

// Register POST /api/v1/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	const route = "POST /auth/register"

	var req models.RegisterRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - User registered: user_id=%d", route, result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Login POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	const route = "POST /auth/login"

	var req models.LoginRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// SendLoginOTP POST /api/v1/auth/login/otp/send
func (h *Handler) SendLoginOTP(w http.ResponseWriter, r *http.Request) {
	const route = "POST /auth/login/otp/send"

	var req models.SendOTPRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	if err := h.service.SendLoginOTP(r.Context(), req.Phone); err != nil {
		h.respondError(w, route, err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, msgOTPSent)
}

// VerifyLoginOTP POST /api/v1/auth/login/otp/verify
func (h *Handler) VerifyLoginOTP(w http.ResponseWriter, r *http.Request) {
	const route = "POST /auth/login/otp/verify"

	var req models.VerifyOTPRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	result, err := h.service.VerifyLoginOTP(r.Context(), &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Me GET /api/v1/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	const route = "GET /auth/me"

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	result, err := h.service.Me(r.Context(), userID)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// SendEmailOTP POST /api/v1/auth/email/otp/send
func (h *Handler) SendEmailOTP(w http.ResponseWriter, r *http.Request) {
	const route = "POST /auth/email/otp/send"

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	if err := h.service.SendEmailOTP(r.Context(), userID); err != nil {
		h.respondError(w, route, err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, msgEmailOTPSent)
}

// VerifyEmailOTP POST /api/v1/auth/email/otp/verify
func (h *Handler) VerifyEmailOTP(w http.ResponseWriter, r *http.Request) {
	const route = "POST /auth/email/otp/verify"

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	var req models.EmailOTPRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	if err := h.service.VerifyEmailOTP(r.Context(), userID, req.OTP); err != nil {
		h.respondError(w, route, err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, msgEmailVerified)
}

// ForgotPasswordInitiate POST /api/v1/auth/forgot-password/initiate
func (h *Handler) ForgotPasswordInitiate(w http.ResponseWriter, r *http.Request) {
	const route = "POST /auth/forgot-password/initiate"

	var req models.ForgotPasswordInitiateRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	result, err := h.service.ForgotPasswordInitiate(r.Context(), req.Identifier)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ForgotPasswordReset POST /api/v1/auth/forgot-password/reset
func (h *Handler) ForgotPasswordReset(w http.ResponseWriter, r *http.Request) {
	const route = "POST /auth/forgot-password/reset"

	var req models.ForgotPasswordResetRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	if err := h.service.ForgotPasswordReset(r.Context(), &req); err != nil {
		h.respondError(w, route, err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, msgPasswordReset)
}

// decode читает и валидирует тело; при ошибке ответ уже отправлен
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string, dst interface{}) bool {
	if err := handlers.DecodeJSON(r, dst); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return false
	}
	if err := handlers.Validate(dst); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
		return false
	}
	return true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, authService.ErrInvalidCredentials):
		h.logger.Warn("%s - Invalid credentials", route)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)

	case errors.Is(err, authService.ErrAccountBlocked):
		h.logger.Warn("%s - Account blocked", route)
		handlers.RespondForbidden(w, msgAccountBlocked)

	case errors.Is(err, authService.ErrRoleDenied):
		h.logger.Warn("%s - Role denied", route)
		handlers.RespondForbidden(w, msgRoleDenied)

	case errors.Is(err, authService.ErrEmailNotVerified):
		handlers.RespondForbidden(w, msgEmailNotVerified)

	case errors.Is(err, authService.ErrUserExists):
		handlers.RespondConflict(w, msgUserExists)

	case errors.Is(err, authService.ErrUserNotFound):
		handlers.RespondNotFound(w, msgUserNotFound)

	case errors.Is(err, authService.ErrNoEmail):
		handlers.RespondBadRequest(w, msgNoEmail)

	case errors.Is(err, otp.ErrTooManyAttempts):
		h.logger.Warn("%s - Too many OTP attempts", route)
		handlers.RespondBadRequest(w, msgTooManyAttempts)

	case errors.Is(err, otp.ErrCodeNotFound), errors.Is(err, otp.ErrCodeMismatch):
		h.logger.Warn("%s - Invalid OTP", route)
		handlers.RespondBadRequest(w, msgInvalidOTP)

	case errors.Is(err, authService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, authService.ErrOTPUnavailable):
		h.logger.Error("%s - OTP channel disabled", route)
		handlers.RespondError(w, http.StatusBadGateway, msgOTPUnavailable)

	case errors.Is(err, authService.ErrOTPDelivery):
		h.logger.Error("%s - OTP delivery failed: %v", route, err)
		handlers.RespondError(w, http.StatusBadGateway, msgOTPDelivery)

	default:
		h.logger.Error("%s - Request failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
