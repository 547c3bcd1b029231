package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TurfBookingService/internal/domain"
	galleryRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/gallery"
	"github.com/m04kA/TurfBookingService/internal/service/gallery/models"
	"github.com/m04kA/TurfBookingService/pkg/ptr"
)

// Service сервис галереи
type Service struct {
	repo   GalleryRepository
	media  MediaStore
	logger Logger
}

// NewService создает новый экземпляр сервиса галереи.
// media может быть nil: тогда принимаются только готовые URL
func NewService(repo GalleryRepository, media MediaStore, logger Logger) *Service {
	return &Service{
		repo:   repo,
		media:  media,
		logger: logger,
	}
}

// ListImages все изображения, сначала новые
func (s *Service) ListImages(ctx context.Context) ([]*models.ImageResponse, error) {
	images, err := s.repo.ListImages(ctx)
	if err != nil {
		s.logger.Error("ListImages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListImages - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainImages(images), nil
}

// ListCategories категории по имени вместе с изображениями
func (s *Service) ListCategories(ctx context.Context) ([]*models.CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	images, err := s.repo.ListImages(ctx)
	if err != nil {
		s.logger.Error("ListCategories: failed to list images: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	return models.GroupByCategory(categories, images), nil
}

// CreateCategory создает категорию
func (s *Service) CreateCategory(ctx context.Context, name string) (*models.CategoryResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name required", ErrInvalidInput)
	}

	category, err := s.repo.CreateCategory(ctx, name)
	if err != nil {
		if errors.Is(err, galleryRepo.ErrDuplicateCategory) {
			return nil, ErrDuplicateCategory
		}
		s.logger.Error("CreateCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCategory: created category id=%d, name=%s", category.ID, category.Name)
	return &models.CategoryResponse{ID: category.ID, Name: category.Name, Images: []*models.ImageResponse{}, CreatedAt: category.CreatedAt}, nil
}

// AddImage добавляет изображение в категорию, категория создается при необходимости.
// Если запись в БД не удалась, загруженный файл удаляется из хранилища
func (s *Service) AddImage(ctx context.Context, req *models.AddImageRequest) (*models.ImageResponse, error) {
	categoryName := strings.TrimSpace(req.CategoryName)
	url := strings.TrimSpace(req.URL)
	if categoryName == "" || (req.File == nil && url == "") {
		return nil, fmt.Errorf("%w: category name and image are required", ErrInvalidInput)
	}

	// 1. Категория по имени или новая
	category, err := s.findOrCreateCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	// 2. Загрузка файла
	img := &domain.GalleryImage{CategoryID: category.ID, Category: category.Name, URL: url}
	if req.File != nil {
		if s.media == nil {
			s.logger.Error("AddImage: media storage is disabled")
			return nil, ErrUploadUnavailable
		}
		asset, err := s.media.Upload(ctx, req.File, req.Filename)
		if err != nil {
			s.logger.Error("AddImage: upload of %s failed: %v", req.Filename, err)
			return nil, err
		}
		img.URL = asset.URL
		img.PublicID = ptr.Ptr(asset.PublicID)
	}

	// 3. Запись в БД
	created, err := s.repo.CreateImage(ctx, img)
	if err != nil {
		s.logger.Error("AddImage: repository error: %v", err)
		if img.PublicID != nil {
			s.destroy(ctx, *img.PublicID)
		}
		return nil, fmt.Errorf("%w: AddImage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddImage: image id=%d added to category %s", created.ID, category.Name)
	return models.FromDomainImage(created), nil
}

// DeleteImage удаляет изображение. Файл в хранилище удаляется после записи в БД,
// ошибка удаления файла только логируется
func (s *Service) DeleteImage(ctx context.Context, id int64) error {
	img, err := s.repo.GetImage(ctx, id)
	if err != nil {
		if errors.Is(err, galleryRepo.ErrImageNotFound) {
			return ErrImageNotFound
		}
		s.logger.Error("DeleteImage: failed to get image id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteImage - repository error: %v", ErrInternal, err)
	}

	if err := s.repo.DeleteImage(ctx, id); err != nil {
		if errors.Is(err, galleryRepo.ErrImageNotFound) {
			return ErrImageNotFound
		}
		s.logger.Error("DeleteImage: failed to delete image id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteImage - repository error: %v", ErrInternal, err)
	}

	if img.PublicID != nil && *img.PublicID != "" {
		s.destroy(ctx, *img.PublicID)
	}

	s.logger.Info("DeleteImage: image id=%d deleted", id)
	return nil
}

func (s *Service) findOrCreateCategory(ctx context.Context, name string) (*domain.GalleryCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("findOrCreateCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: list categories: %v", ErrInternal, err)
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}

	category, err := s.repo.CreateCategory(ctx, name)
	if err != nil {
		s.logger.Error("findOrCreateCategory: failed to create %s: %v", name, err)
		return nil, fmt.Errorf("%w: create category: %v", ErrInternal, err)
	}
	return category, nil
}

func (s *Service) destroy(ctx context.Context, publicID string) {
	if s.media == nil {
		return
	}
	if err := s.media.Destroy(ctx, publicID); err != nil {
		s.logger.Warn("destroy: failed to remove %s from media storage: %v", publicID, err)
	}
}
