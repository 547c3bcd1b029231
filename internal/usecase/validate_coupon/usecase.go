package validate_coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TurfBookingService/internal/domain"
	couponRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/coupon"
	"github.com/m04kA/TurfBookingService/internal/service/pricing"
)

// UseCase use case проверки купона без его применения
type UseCase struct {
	couponRepo   CouponRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(couponRepo CouponRepository, logger Logger) *UseCase {
	return &UseCase{
		couponRepo:   couponRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет купон и считает скидку. Счетчик использований не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID == nil {
		uc.logger.Warn("ValidateCoupon: anonymous request for code %q", req.Code)
		return nil, ErrLoginRequired
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}

	check := pricing.Check{BookingDate: req.Date}
	for _, key := range req.Slots {
		interval, err := domain.ParseSlotKey(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		check.RequestedStarts = append(check.RequestedStarts, interval.Start)
	}

	coupon, err := uc.couponRepo.GetByCode(ctx, code)
	if err != nil && !errors.Is(err, couponRepo.ErrCouponNotFound) {
		uc.logger.Error("ValidateCoupon: failed to get coupon %q: %v", code, err)
		return nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
	}

	result, err := pricing.EvaluateCoupon(coupon, req.Amount, check, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("ValidateCoupon: user=%d, code=%q rejected: %v", *req.UserID, code, err)
		return nil, err
	}

	uc.logger.Info("ValidateCoupon: user=%d, code=%s, amount=%.2f, discount=%.2f",
		*req.UserID, result.Coupon.Code, req.Amount, result.Discount)

	return &Response{
		Code:        result.Coupon.Code,
		Discount:    pricing.FromPaise(pricing.ToPaise(result.Discount)),
		FinalAmount: pricing.FromPaise(pricing.ToPaise(result.FinalAmount)),
	}, nil
}
