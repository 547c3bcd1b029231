package gallery

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/service/gallery/models"
)

type GalleryService interface {
	ListImages(ctx context.Context) ([]*models.ImageResponse, error)
	ListCategories(ctx context.Context) ([]*models.CategoryResponse, error)
	CreateCategory(ctx context.Context, name string) (*models.CategoryResponse, error)
	AddImage(ctx context.Context, req *models.AddImageRequest) (*models.ImageResponse, error)
	DeleteImage(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
