package auth

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/service/auth/models"
)

type AuthService interface {
	SendRegisterOTP(ctx context.Context, phone string) error
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	SendLoginOTP(ctx context.Context, phone string) error
	VerifyLoginOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error)
	Me(ctx context.Context, userID int64) (*models.UserResponse, error)
	SendEmailOTP(ctx context.Context, userID int64) error
	VerifyEmailOTP(ctx context.Context, userID int64, code string) error
	ForgotPasswordInitiate(ctx context.Context, identifier string) (*models.ChannelResponse, error)
	ForgotPasswordReset(ctx context.Context, req *models.ForgotPasswordResetRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
