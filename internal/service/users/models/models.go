package models

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// Request модели

// CreateWatchmanRequest запрос на создание аккаунта сторожа
type CreateWatchmanRequest struct {
	Name     string  `json:"name" validate:"required"`
	Phone    string  `json:"phone" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=6"`
}

// UpdateProfileRequest запрос на обновление профиля
type UpdateProfileRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// Response модели

// UserResponse публичные данные пользователя (без хеша пароля)
type UserResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           *string   `json:"email"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToggleStatusResponse результат смены статуса
type ToggleStatusResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
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
		Status:          string(u.Status),
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
	}
}

// FromDomainUsers конвертирует список пользователей
func FromDomainUsers(list []*domain.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(list))
	for _, u := range list {
		result = append(result, FromDomainUser(u))
	}
	return result
}
