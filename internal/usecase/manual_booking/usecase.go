package manual_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
	reservationRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/TurfBookingService/internal/service/availability"
	"github.com/m04kA/TurfBookingService/pkg/pgerr"
)

// UseCase use case ручной брони администратором (оплата на месте)
type UseCase struct {
	reservationRepo ReservationRepository
	sweeper         Sweeper
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, sweeper Sweeper, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		sweeper:         sweeper,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute создает подтвержденную бронь с оплатой CASH, если интервал свободен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ManualBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)

	// 2. Освобождаем просроченные удержания, чтобы они не мешали брони
	uc.sweeper.SweepStale(ctx)

	var created *domain.Reservation

	// 3. Проверка пересечений и создание в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		active, err := uc.reservationRepo.GetActiveByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("ManualBooking: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		if availability.HasAnyOverlap([]domain.Interval{interval}, availability.ReservationIntervals(active)) {
			uc.logger.Warn("ManualBooking: %s on %s overlaps active reservations", interval.Key(), domain.FormatDate(date))
			return ErrSlotUnavailable
		}

		created, err = uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Date:        date,
			StartTime:   interval.Start,
			EndTime:     interval.End,
			Status:      domain.StatusConfirmed,
			Sport:       req.Sport,
			Amount:      req.Amount,
			GuestName:   req.GuestName,
			GuestPhone:  req.GuestPhone,
			PaymentMode: domain.PaymentCash,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotUnavailable
			}
			uc.logger.Error("ManualBooking: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if pgerr.IsSerializationFailure(err) {
			uc.logger.Warn("ManualBooking: serialization conflict on %s: %v", domain.FormatDate(date), err)
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	uc.logger.Info("ManualBooking: created booking id=%d, %s on %s", created.ID, interval.Key(), domain.FormatDate(date))

	return &Response{Reservation: created}, nil
}
