package users

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/service/users/models"
)

type UserService interface {
	List(ctx context.Context) ([]*models.UserResponse, error)
	ToggleStatus(ctx context.Context, id int64) (*models.ToggleStatusResponse, error)
	CreateWatchman(ctx context.Context, req *models.CreateWatchmanRequest) (*models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *models.UpdateProfileRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
