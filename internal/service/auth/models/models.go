package models

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// Request модели

// SendOTPRequest запрос кода на телефон
type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// RegisterRequest регистрация с подтверждением телефона
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required"`
	Phone    string  `json:"phone" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=6"`
	OTP      string  `json:"otp" validate:"required"`
}

// LoginRequest вход по телефону или email и паролю.
// Role задается административной панелью и панелью сторожа
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=Phone"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN WATCHMAN USER"`
}

// VerifyOTPRequest вход по коду из SMS
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// EmailOTPRequest подтверждение email кодом
type EmailOTPRequest struct {
	OTP string `json:"otp" validate:"required"`
}

// ForgotPasswordInitiateRequest запрос кода для сброса пароля
type ForgotPasswordInitiateRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

// ForgotPasswordResetRequest сброс пароля по коду
type ForgotPasswordResetRequest struct {
	Identifier  string `json:"identifier" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// Response модели

// UserResponse данные текущего пользователя
type UserResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email"`
	Role            string  `json:"role"`
	IsEmailVerified bool    `json:"isEmailVerified"`
}

// AuthResponse токен и пользователь
type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

// ChannelResponse сообщение и канал, по которому отправлен код
type ChannelResponse struct {
	Message string `json:"message"`
	Channel string `json:"channel"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Phone:           u.Phone,
		Email:           u.Email,
		Role:            string(u.Role),
		IsEmailVerified: u.IsEmailVerified,
	}
}
