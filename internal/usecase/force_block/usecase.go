package force_block

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/availability"
	"github.com/m04kA/TurfBookingService/pkg/pgerr"
)

const defaultAdminName = "Admin"

// UseCase use case ручной блокировки слота администратором
type UseCase struct {
	reservationRepo ReservationRepository
	pricingRepo     PricingRepository
	blockLogRepo    BlockLogRepository
	metrics         Metrics
	txManager       TransactionManager
	defaultPrice    float64
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	pricingRepo PricingRepository,
	blockLogRepo BlockLogRepository,
	metrics Metrics,
	txManager TransactionManager,
	defaultPrice float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		pricingRepo:     pricingRepo,
		blockLogRepo:    blockLogRepo,
		metrics:         metrics,
		txManager:       txManager,
		defaultPrice:    defaultPrice,
		logger:          logger,
	}
}

// Execute блокирует или разблокирует слот.
// При блокировке пересекающиеся активные брони отменяются без возврата денег
// в той же транзакции, что и запись переопределения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	interval, err := domain.ParseHourSlotKey(req.Slot)
	if err != nil {
		uc.logger.Warn("ForceBlock: invalid slot %q: %v", req.Slot, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date := domain.DateOnly(req.Date)
	action := domain.ActionUnblocked
	if req.IsBlocked {
		action = domain.ActionBlocked
	}

	var cancelled int64

	// 2. Отмена пересекающихся броней и переопределение в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		cancelled = 0

		if !req.IsBlocked {
			if err := uc.pricingRepo.Remove(txCtx, date, interval.Key()); err != nil {
				uc.logger.Error("ForceBlock: failed to remove override %s on %s: %v", interval.Key(), domain.FormatDate(date), err)
				return fmt.Errorf("%w: failed to remove override: %v", ErrInternal, err)
			}
			return nil
		}

		active, err := uc.reservationRepo.GetActiveByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("ForceBlock: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		ids := make([]int64, 0)
		for _, r := range active {
			if availability.Overlaps(interval, r.Interval()) {
				ids = append(ids, r.ID)
			}
		}

		cancelled, err = uc.reservationRepo.CancelByIDs(txCtx, ids)
		if err != nil {
			uc.logger.Error("ForceBlock: failed to cancel reservations %v: %v", ids, err)
			return fmt.Errorf("%w: failed to cancel reservations: %v", ErrInternal, err)
		}

		override := domain.PricingOverride{Slot: interval.Key(), Price: uc.defaultPrice, IsBlocked: true}
		if err := uc.pricingRepo.Merge(txCtx, date, []domain.PricingOverride{override}); err != nil {
			uc.logger.Error("ForceBlock: failed to store override %s on %s: %v", interval.Key(), domain.FormatDate(date), err)
			return fmt.Errorf("%w: failed to store override: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if pgerr.IsSerializationFailure(err) {
			uc.logger.Warn("ForceBlock: serialization conflict on %s %s: %v", domain.FormatDate(date), interval.Key(), err)
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	if cancelled > 0 {
		uc.logger.Warn("ForceBlock: cancelled %d active bookings on %s %s without refund",
			cancelled, domain.FormatDate(date), interval.Key())
	}

	// 3. Журнал блокировок. Ошибка не отменяет уже примененную блокировку
	uc.appendLog(ctx, &domain.BlockLogEntry{
		TargetDate: date,
		Slot:       interval.Key(),
		Action:     action,
		AdminName:  adminName(req.AdminName),
	})

	if uc.metrics != nil {
		uc.metrics.IncForceBlock(string(action))
	}

	uc.logger.Info("ForceBlock: %s %s on %s by %s", action, interval.Key(), domain.FormatDate(date), adminName(req.AdminName))

	verb := "Unblocked"
	if req.IsBlocked {
		verb = "Blocked"
	}

	return &Response{
		Action:         action,
		CancelledCount: cancelled,
		Message:        "Slot successfully " + verb,
	}, nil
}

// appendLog добавляет запись и обрезает журнал до BlockLogCap
func (uc *UseCase) appendLog(ctx context.Context, entry *domain.BlockLogEntry) {
	if err := uc.blockLogRepo.Append(ctx, entry); err != nil {
		uc.logger.Warn("ForceBlock: failed to append block log: %v", err)
		return
	}
	if _, err := uc.blockLogRepo.Trim(ctx, domain.BlockLogCap); err != nil {
		uc.logger.Warn("ForceBlock: failed to trim block log: %v", err)
	}
}

func adminName(name string) string {
	if strings.TrimSpace(name) == "" {
		return defaultAdminName
	}
	return name
}
