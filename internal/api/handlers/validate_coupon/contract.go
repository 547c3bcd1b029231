package validate_coupon

import (
	"context"

	validateCoupon "github.com/m04kA/TurfBookingService/internal/usecase/validate_coupon"
)

type ValidateCouponUseCase interface {
	Execute(ctx context.Context, req *validateCoupon.Request) (*validateCoupon.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
