package models

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=1000"`
}

// AuthorResponse автор отзыва
type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReviewResponse отзыв
type ReviewResponse struct {
	ID        int64          `json:"id"`
	Rating    int            `json:"rating"`
	Comment   string         `json:"comment"`
	User      AuthorResponse `json:"user"`
	CreatedAt time.Time      `json:"createdAt"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(rv *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        rv.ID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		User:      AuthorResponse{ID: rv.UserID, Name: rv.UserName},
		CreatedAt: rv.CreatedAt,
	}
}

// FromDomainReviews конвертирует список отзывов
func FromDomainReviews(list []*domain.Review) []*ReviewResponse {
	result := make([]*ReviewResponse, 0, len(list))
	for _, rv := range list {
		result = append(result, FromDomainReview(rv))
	}
	return result
}
