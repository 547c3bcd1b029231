package models

import (
	"io"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// Request модели

// AddImageRequest новое изображение: файл загружается в хранилище медиа,
// либо передается готовый URL
type AddImageRequest struct {
	CategoryName string
	URL          string
	File         io.Reader
	Filename     string
}

// CreateCategoryRequest запрос на создание категории
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// Response модели

// ImageResponse изображение галереи в плоском виде
type ImageResponse struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"categoryId"`
	Category   string    `json:"category"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CategoryResponse категория со своими изображениями
type CategoryResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Images    []*ImageResponse `json:"galleries"`
	CreatedAt time.Time        `json:"createdAt"`
}

// FromDomainImage конвертирует domain модель в DTO
func FromDomainImage(img *domain.GalleryImage) *ImageResponse {
	return &ImageResponse{
		ID:         img.ID,
		CategoryID: img.CategoryID,
		Category:   img.Category,
		URL:        img.URL,
		CreatedAt:  img.CreatedAt,
	}
}

// FromDomainImages конвертирует список изображений
func FromDomainImages(list []*domain.GalleryImage) []*ImageResponse {
	result := make([]*ImageResponse, 0, len(list))
	for _, img := range list {
		result = append(result, FromDomainImage(img))
	}
	return result
}

// GroupByCategory раскладывает изображения по категориям, порядок категорий сохраняется
func GroupByCategory(categories []*domain.GalleryCategory, images []*domain.GalleryImage) []*CategoryResponse {
	byID := make(map[int64]*CategoryResponse, len(categories))
	result := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp := &CategoryResponse{ID: c.ID, Name: c.Name, Images: []*ImageResponse{}, CreatedAt: c.CreatedAt}
		byID[c.ID] = resp
		result = append(result, resp)
	}
	for _, img := range images {
		if c, ok := byID[img.CategoryID]; ok {
			c.Images = append(c.Images, FromDomainImage(img))
		}
	}
	return result
}
