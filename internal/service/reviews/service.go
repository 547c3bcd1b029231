package reviews

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/reviews/models"
)

// listLimit сколько последних отзывов отдает публичный список
const listLimit = 100

// Service сервис отзывов
type Service struct {
	reviewRepo ReviewRepository
	userRepo   UserRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// List последние отзывы с именами авторов
func (s *Service) List(ctx context.Context) ([]*models.ReviewResponse, error) {
	list, err := s.reviewRepo.List(ctx, listLimit)
	if err != nil {
		s.logger.Error("ListReviews: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviews(list), nil
}

// Create сохраняет отзыв пользователя
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: rating and comment are required", ErrInvalidInput)
	}
	if req.Rating < domain.MinReviewRating || req.Rating > domain.MaxReviewRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinReviewRating, domain.MaxReviewRating)
	}
	if utf8.RuneCountInString(comment) > domain.MaxReviewLength {
		return nil, fmt.Errorf("%w: comment must be at most %d characters", ErrInvalidInput, domain.MaxReviewLength)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("CreateReview: failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - get user: %v", ErrInternal, err)
	}

	created, err := s.reviewRepo.Create(ctx, &domain.Review{
		UserID:   userID,
		UserName: user.Name,
		Rating:   req.Rating,
		Comment:  comment,
	})
	if err != nil {
		s.logger.Error("CreateReview: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReview: review id=%d by user id=%d, rating=%d", created.ID, userID, created.Rating)
	return models.FromDomainReview(created), nil
}
