package save_pricing

import (
	"context"

	savePricing "github.com/m04kA/TurfBookingService/internal/usecase/save_pricing"
)

type SavePricingUseCase interface {
	Execute(ctx context.Context, req *savePricing.Request) (*savePricing.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
