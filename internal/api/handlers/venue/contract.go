package venue

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/service/venue/models"
)

type VenueService interface {
	GetTurfInfo(ctx context.Context) (*models.TurfInfoResponse, error)
	GetPublicSettings(ctx context.Context) (map[string]string, error)
	UpdateSettings(ctx context.Context, values map[string]string) error
	GetPricingView(ctx context.Context, date time.Time) (*models.PricingViewResponse, error)
	GetBlockLogs(ctx context.Context) ([]models.BlockLogResponse, error)
	ImportLegacyPricing(ctx context.Context) (*models.ImportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
