package get_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/slots"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	pricingRepo     PricingRepository
	reservationRepo ReservationRepository
	sweeper         Sweeper
	defaultPrice    float64
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricingRepo PricingRepository,
	reservationRepo ReservationRepository,
	sweeper Sweeper,
	defaultPrice float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricingRepo:     pricingRepo,
		reservationRepo: reservationRepo,
		sweeper:         sweeper,
		defaultPrice:    defaultPrice,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает стандартные и кастомные слоты даты с ценой и занятостью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetSlots: date=%s", domain.FormatDate(date))

	// 1. Освобождаем просроченные удержания
	uc.sweeper.SweepStale(ctx)

	// 2. Переопределения цен на дату
	overrides, err := uc.pricingRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetSlots: failed to get overrides for %s: %v", domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	// 3. Активные брони на дату
	reservations, err := uc.reservationRepo.GetActiveByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetSlots: failed to get reservations for %s: %v", domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Собираем сетку
	resolved := slots.Resolve(date, overrides, reservations, uc.timeProvider.Now(), uc.defaultPrice)

	uc.logger.Info("GetSlots: date=%s, slots=%d, overrides=%d, active=%d",
		domain.FormatDate(date), len(resolved), len(overrides), len(reservations))

	return &Response{Date: date, Slots: resolved}, nil
}
