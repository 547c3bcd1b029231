package initiate_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/TurfBookingService/internal/domain"
	couponRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/coupon"
	reservationRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/TurfBookingService/internal/service/availability"
	"github.com/m04kA/TurfBookingService/internal/service/pricing"
	"github.com/m04kA/TurfBookingService/internal/service/slots"
	"github.com/m04kA/TurfBookingService/pkg/pgerr"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// UseCase use case для создания чекаута: PENDING-брони + заказ в платежном шлюзе
type UseCase struct {
	reservationRepo ReservationRepository
	pricingRepo     PricingRepository
	couponRepo      CouponRepository
	gateway         PaymentGateway
	sweeper         Sweeper
	metrics         Metrics
	txManager       TransactionManager
	defaultPrice    float64
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	pricingRepo PricingRepository,
	couponRepo CouponRepository,
	gateway PaymentGateway,
	sweeper Sweeper,
	metrics Metrics,
	txManager TransactionManager,
	defaultPrice float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		pricingRepo:     pricingRepo,
		couponRepo:      couponRepo,
		gateway:         gateway,
		sweeper:         sweeper,
		metrics:         metrics,
		txManager:       txManager,
		defaultPrice:    defaultPrice,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания чекаута.
// Проверка пересечений и создание строк выполняются в одной сериализуемой транзакции,
// уникальный индекс активного слота страхует от гонки на уровне БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitiateBooking: user=%s, date=%s, slots=%v",
		userLabel(req.UserID), domain.FormatDate(req.Date), req.Slots)

	// 1. Валидация входных данных
	intervals, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("InitiateBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	now := uc.timeProvider.Now()

	// 2. Купон доступен только зарегистрированным пользователям
	var coupon *domain.Coupon
	if hasCoupon(req) {
		if req.UserID == nil {
			uc.logger.Warn("InitiateBooking: guest tried to use coupon %q", *req.CouponCode)
			return nil, ErrLoginRequired
		}

		coupon, err = uc.couponRepo.GetByCode(ctx, strings.TrimSpace(*req.CouponCode))
		if err != nil && !errors.Is(err, couponRepo.ErrCouponNotFound) {
			uc.logger.Error("InitiateBooking: failed to get coupon %q: %v", *req.CouponCode, err)
			return nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
		}
	}

	// 3. Освобождаем просроченные удержания
	uc.sweeper.SweepStale(ctx)

	var (
		created  []*domain.Reservation
		subtotal float64
		result   *pricing.Result
	)

	// 4. Проверка доступности и создание PENDING-броней в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]

		// 4.1. Переопределения цен на дату
		overrides, err := uc.pricingRepo.GetByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("InitiateBooking: failed to get overrides: %v", err)
			return fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
		}

		// 4.2. Активные брони на дату с блокировкой (FOR UPDATE)
		active, err := uc.reservationRepo.GetActiveByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("InitiateBooking: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4.3. Каждый запрошенный слот должен существовать, не быть прошедшим и закрытым
		resolved := slots.Resolve(date, overrides, active, now, uc.defaultPrice)
		prices := make([]float64, 0, len(intervals))
		for _, interval := range intervals {
			slot, ok := slots.FindSlot(resolved, interval.Key())
			if !ok {
				uc.logger.Warn("InitiateBooking: slot %s is not offered on %s", interval.Key(), domain.FormatDate(date))
				return fmt.Errorf("%w: %s", ErrUnknownSlot, interval.Key())
			}
			if slot.IsPastSlot {
				uc.logger.Warn("InitiateBooking: slot %s on %s is in the past", interval.Key(), domain.FormatDate(date))
				return fmt.Errorf("%w: %s", ErrSlotInPast, interval.Key())
			}
			if slot.IsAdminBlocked {
				uc.logger.Warn("InitiateBooking: slot %s on %s is blocked", interval.Key(), domain.FormatDate(date))
				return fmt.Errorf("%w: %s", ErrSlotBlocked, interval.Key())
			}
			prices = append(prices, slot.Price)
		}

		// 4.4. Весь запрос отклоняется, если хотя бы один слот пересекается с активной бронью
		if availability.HasAnyOverlap(intervals, availability.ReservationIntervals(active)) {
			uc.logger.Warn("InitiateBooking: overlap with active reservations on %s", domain.FormatDate(date))
			return ErrSlotUnavailable
		}

		// 4.5. Сумма считается по ценам сервера, сумма клиента только сверяется
		subtotal = pricing.Sum(prices)
		if req.Amount > 0 && pricing.ToPaise(req.Amount) != pricing.ToPaise(subtotal) {
			uc.logger.Warn("InitiateBooking: amount mismatch, client=%.2f, server=%.2f", req.Amount, subtotal)
			return fmt.Errorf("%w: expected %.2f", ErrAmountMismatch, subtotal)
		}

		// 4.6. Купон
		result = &pricing.Result{FinalAmount: subtotal}
		if hasCoupon(req) {
			starts := make([]types.TimeString, 0, len(intervals))
			for _, interval := range intervals {
				starts = append(starts, interval.Start)
			}
			result, err = pricing.EvaluateCoupon(coupon, subtotal, pricing.Check{
				BookingDate:     &date,
				RequestedStarts: starts,
			}, now)
			if err != nil {
				uc.logger.Warn("InitiateBooking: coupon %q rejected: %v", *req.CouponCode, err)
				return err
			}
		}

		// 4.7. Создаем по строке на слот, остаток округления достается последней
		amounts := pricing.SplitAmount(result.FinalAmount, len(intervals))
		for i, interval := range intervals {
			res := &domain.Reservation{
				Date:        date,
				StartTime:   interval.Start,
				EndTime:     interval.End,
				Status:      domain.StatusPending,
				Sport:       req.Sport,
				Amount:      amounts[i],
				UserID:      req.UserID,
				GuestName:   req.GuestName,
				GuestPhone:  req.GuestPhone,
				GuestEmail:  req.GuestEmail,
				PaymentMode: domain.PaymentOnline,
			}
			if result.Coupon != nil {
				res.CouponID = &result.Coupon.ID
			}

			saved, err := uc.reservationRepo.Create(txCtx, res)
			if err != nil {
				if errors.Is(err, reservationRepo.ErrSlotTaken) {
					uc.logger.Warn("InitiateBooking: slot %s taken concurrently", interval.Key())
					return ErrSlotUnavailable
				}
				uc.logger.Error("InitiateBooking: failed to create reservation: %v", err)
				return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
			}
			created = append(created, saved)
		}

		return nil
	})

	if err != nil {
		// повторы сериализуемой транзакции исчерпаны: слот забрал конкурентный чекаут
		if pgerr.IsSerializationFailure(err) {
			uc.logger.Warn("InitiateBooking: serialization conflict on %s: %v", domain.FormatDate(date), err)
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	ids := make([]int64, 0, len(created))
	for _, r := range created {
		ids = append(ids, r.ID)
	}
	finalAmount := pricing.FromPaise(pricing.ToPaise(result.FinalAmount))

	// 5. Заказ в платежном шлюзе. При ошибке брони остаются PENDING и истекают по TTL
	receipt := "bk_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	order, err := uc.gateway.CreateOrder(pricing.ToPaise(finalAmount), receipt)
	if err != nil {
		uc.logger.Error("InitiateBooking: failed to create payment order for bookings %v: %v", ids, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	// 6. Привязываем заказ к броням. Без привязки оплату нельзя подтвердить, брони истекут по TTL
	if err := uc.reservationRepo.SetPaymentRef(ctx, ids, order.ID); err != nil {
		uc.logger.Error("InitiateBooking: failed to store order id=%s for bookings %v: %v", order.ID, ids, err)
		return nil, fmt.Errorf("%w: failed to store payment order: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.AddBookingsInitiated(len(ids))
	}

	uc.logger.Info("InitiateBooking: created bookings %v, order=%s, amount=%.2f", ids, order.ID, finalAmount)

	return &Response{
		OrderID:     order.ID,
		KeyID:       uc.gateway.KeyID(),
		AmountPaise: order.Amount,
		Currency:    order.Currency,
		Receipt:     order.Receipt,
		BookingIDs:  ids,
		Subtotal:    subtotal,
		Discount:    pricing.FromPaise(pricing.ToPaise(subtotal) - pricing.ToPaise(finalAmount)),
		FinalAmount: finalAmount,
	}, nil
}

func userLabel(userID *int64) string {
	if userID == nil {
		return "guest"
	}
	return fmt.Sprintf("%d", *userID)
}
