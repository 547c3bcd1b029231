package reviews

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/service/reviews/models"
)

type ReviewService interface {
	List(ctx context.Context) ([]*models.ReviewResponse, error)
	Create(ctx context.Context, userID int64, req *models.CreateReviewRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
