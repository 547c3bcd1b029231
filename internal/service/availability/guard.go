package availability

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// Guard ленивая очистка просроченных PENDING-удержаний
// Вызывается в начале операций, где важна актуальная занятость слотов
type Guard struct {
	reservationRepo ReservationRepository
	metrics         Metrics
	timeProvider    TimeProvider
	holdTTL         time.Duration
	logger          Logger
}

// NewGuard создает новый экземпляр Guard
func NewGuard(reservationRepo ReservationRepository, metrics Metrics, logger Logger) *Guard {
	return &Guard{
		reservationRepo: reservationRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		holdTTL:         domain.PendingHoldTTL,
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (g *Guard) WithTimeProvider(tp TimeProvider) *Guard {
	g.timeProvider = tp
	return g
}

// SweepStale отменяет PENDING-брони старше holdTTL
// Ошибки только логируются: очистка не должна ломать основную операцию
func (g *Guard) SweepStale(ctx context.Context) int64 {
	cutoff := g.timeProvider.Now().Add(-g.holdTTL)

	expired, err := g.reservationRepo.ExpireStalePending(ctx, cutoff)
	if err != nil {
		g.logger.Warn("SweepStale: failed to expire pending holds older than %s: %v", cutoff.Format(time.RFC3339), err)
		return 0
	}

	if expired > 0 {
		g.logger.Info("SweepStale: expired %d pending holds", expired)
		if g.metrics != nil {
			g.metrics.AddPendingExpired(expired)
		}
	}

	return expired
}
