package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TurfBookingService/internal/domain"
	userRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/user"
	"github.com/m04kA/TurfBookingService/internal/service/users/models"
	"github.com/m04kA/TurfBookingService/pkg/password"
)

// Service сервис управления аккаунтами
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List возвращает всех пользователей, сначала новые
func (s *Service) List(ctx context.Context) ([]*models.UserResponse, error) {
	list, err := s.userRepo.List(ctx, nil)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUsers(list), nil
}

// ToggleStatus переключает ACTIVE <-> BLOCKED
func (s *Service) ToggleStatus(ctx context.Context, id int64) (*models.ToggleStatusResponse, error) {
	user, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := domain.UserBlocked
	if user.IsBlocked() {
		next = domain.UserActive
	}

	if err := s.userRepo.SetStatus(ctx, id, next); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("ToggleUserStatus: failed to update user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleStatus - repository error: %v", ErrInternal, err)
	}
	user.Status = next

	s.logger.Info("ToggleUserStatus: user id=%d is now %s", id, next)
	return &models.ToggleStatusResponse{
		Message: "User " + strings.ToLower(string(next)),
		User:    models.FromDomainUser(user),
	}, nil
}

// CreateWatchman создает аккаунт сторожа
func (s *Service) CreateWatchman(ctx context.Context, req *models.CreateWatchmanRequest) (*models.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, phone, and password are required", ErrInvalidInput)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		s.logger.Error("CreateWatchman: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: CreateWatchman - hash password: %v", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		Name:         name,
		Phone:        phone,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleWatchman,
		Status:       domain.UserActive,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			s.logger.Warn("CreateWatchman: phone %s or email already in use", phone)
			return nil, ErrAlreadyInUse
		}
		s.logger.Error("CreateWatchman: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateWatchman - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateWatchman: created watchman id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// UpdateProfile обновляет имя и email пользователя.
// Телефон является идентификатором входа по OTP и здесь не меняется
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, name, req.Email); err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, userRepo.ErrDuplicateUser):
			s.logger.Warn("UpdateProfile: email already in use, user id=%d", userID)
			return nil, ErrAlreadyInUse
		}
		s.logger.Error("UpdateProfile: failed to update user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	user, err := s.getByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateProfile: updated user id=%d", userID)
	return models.FromDomainUser(user), nil
}

func (s *Service) getByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("getByID: failed to get user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getByID - repository error: %v", ErrInternal, err)
	}
	return user, nil
}
