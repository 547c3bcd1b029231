package gallery

import (
	"context"
	"io"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/integrations/mediastore"
)

// GalleryRepository интерфейс репозитория галереи
type GalleryRepository interface {
	CreateCategory(ctx context.Context, name string) (*domain.GalleryCategory, error)
	ListCategories(ctx context.Context) ([]*domain.GalleryCategory, error)
	CreateImage(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error)
	GetImage(ctx context.Context, id int64) (*domain.GalleryImage, error)
	ListImages(ctx context.Context) ([]*domain.GalleryImage, error)
	DeleteImage(ctx context.Context, id int64) error
}

// MediaStore внешнее хранилище файлов изображений
type MediaStore interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*mediastore.Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
