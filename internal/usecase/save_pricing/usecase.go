package save_pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// UseCase use case сохранения переопределений цен и блокировок слотов
type UseCase struct {
	pricingRepo PricingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricingRepo PricingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		pricingRepo: pricingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute сливает переопределения в дату, а при ApplyForward еще и в следующие 30 дней.
// При Replace прежние переопределения даты удаляются. Все даты сохраняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	entries, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SavePricing: validation failed: %v", err)
		return nil, err
	}

	dates := targetDates(domain.DateOnly(req.Date), req.ApplyForward)

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, date := range dates {
			if req.Replace {
				if err := uc.pricingRepo.ClearDate(txCtx, date); err != nil {
					uc.logger.Error("SavePricing: failed to clear overrides for %s: %v", domain.FormatDate(date), err)
					return fmt.Errorf("%w: failed to clear overrides: %v", ErrInternal, err)
				}
			}
			if err := uc.pricingRepo.Merge(txCtx, date, entries); err != nil {
				uc.logger.Error("SavePricing: failed to merge overrides for %s: %v", domain.FormatDate(date), err)
				return fmt.Errorf("%w: failed to merge overrides: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SavePricing: saved %d overrides for %s (days=%d, replace=%t)",
		len(entries), domain.FormatDate(dates[0]), len(dates), req.Replace)

	message := "Pricing saved for today only"
	if req.ApplyForward {
		message = "Pricing applied for today and next 30 days"
	}

	return &Response{Dates: dates, Message: message}, nil
}

// targetDates дата запроса и, при forward, следующие ForwardCopyDays дней
func targetDates(date time.Time, forward bool) []time.Time {
	dates := []time.Time{date}
	if !forward {
		return dates
	}
	for i := 1; i <= domain.ForwardCopyDays; i++ {
		dates = append(dates, date.AddDate(0, 0, i))
	}
	return dates
}
