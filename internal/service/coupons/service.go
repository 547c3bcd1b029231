package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	couponRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/coupon"
	"github.com/m04kA/TurfBookingService/internal/service/coupons/models"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Service сервис администрирования купонов
type Service struct {
	couponRepo CouponRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса купонов
func NewService(couponRepo CouponRepository, logger Logger) *Service {
	return &Service{
		couponRepo: couponRepo,
		logger:     logger,
	}
}

// Create создает купон. Код сохраняется в верхнем регистре
func (s *Service) Create(ctx context.Context, req *models.CreateCouponRequest) (*models.CouponResponse, error) {
	coupon, err := toDomain(req)
	if err != nil {
		s.logger.Warn("CreateCoupon: validation failed: %v", err)
		return nil, err
	}

	created, err := s.couponRepo.Create(ctx, coupon)
	if err != nil {
		if errors.Is(err, couponRepo.ErrDuplicateCode) {
			s.logger.Warn("CreateCoupon: code %s already exists", coupon.Code)
			return nil, ErrDuplicateCode
		}
		s.logger.Error("CreateCoupon: failed to create coupon %s: %v", coupon.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCoupon: created coupon id=%d, code=%s", created.ID, created.Code)
	return models.FromDomainCoupon(created), nil
}

// List возвращает все купоны, сначала новые
func (s *Service) List(ctx context.Context) ([]*models.CouponResponse, error) {
	list, err := s.couponRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCoupons: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCoupons(list), nil
}

// Delete удаляет купон
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.couponRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			return ErrCouponNotFound
		}
		s.logger.Error("DeleteCoupon: failed to delete coupon id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCoupon: deleted coupon id=%d", id)
	return nil
}

func toDomain(req *models.CreateCouponRequest) (*domain.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	couponType := domain.CouponType(strings.ToUpper(req.Type))
	if !couponType.IsValid() {
		return nil, fmt.Errorf("%w: unknown coupon type %q", ErrInvalidInput, req.Type)
	}
	if req.Value <= 0 {
		return nil, fmt.Errorf("%w: value must be positive", ErrInvalidInput)
	}
	if couponType == domain.CouponPercentage && req.Value > 100 {
		return nil, fmt.Errorf("%w: percentage must not exceed 100", ErrInvalidInput)
	}
	// купон действует до конца дня истечения (IST)
	expiry, err := domain.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expiryDate: %v", ErrInvalidInput, err)
	}
	expiresAt := domain.EventTime(expiry, 24*60).Add(-time.Nanosecond)

	slots := make([]string, 0, len(req.ValidSlots))
	for _, raw := range req.ValidSlots {
		t := types.TimeString(strings.TrimSpace(raw))
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid slot %q", ErrInvalidInput, raw)
		}
		slots = append(slots, t.String())
	}

	coupon := &domain.Coupon{
		Code:        code,
		Type:        couponType,
		Value:       req.Value,
		MaxDiscount: positiveFloat(req.MaxDiscount),
		MaxUsage:    positiveInt(req.MaxUsage),
		ExpiryDate:  expiresAt,
		IsActive:    true,
		ValidSlots:  slots,
	}
	if req.ValidDate != nil && strings.TrimSpace(*req.ValidDate) != "" {
		d, err := domain.ParseDate(*req.ValidDate)
		if err != nil {
			return nil, fmt.Errorf("%w: validDate: %v", ErrInvalidInput, err)
		}
		coupon.ValidDate = &d
	}
	return coupon, nil
}

// 0 означает "без ограничения"
func positiveInt(v *int) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

func positiveFloat(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}
