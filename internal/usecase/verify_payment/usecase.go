package verify_payment

import (
	"context"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// UseCase use case подтверждения оплаты чекаута
type UseCase struct {
	reservationRepo ReservationRepository
	couponRepo      CouponRepository
	verifier        SignatureVerifier
	txManager       TransactionManager
	notifier        *notifier
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// Notifications каналы уведомлений; nil-поле отключает канал
type Notifications struct {
	Mailer    ReceiptMailer
	Messenger Messenger
	Events    EventPublisher
	TurfName  string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	couponRepo CouponRepository,
	verifier SignatureVerifier,
	txManager TransactionManager,
	notifications Notifications,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		couponRepo:      couponRepo,
		verifier:        verifier,
		txManager:       txManager,
		notifier:        newNotifier(notifications, logger),
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute проверяет подпись и переводит PENDING-брони в CONFIRMED.
// Переход условный (только из PENDING), поэтому повторная проверка того же платежа
// не увеличивает счетчик купона и не отправляет уведомления повторно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("VerifyPayment: order=%s, payment=%s, bookings=%v", req.OrderID, req.PaymentID, req.BookingIDs)

	// 1. Валидация входных данных
	ids, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("VerifyPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Подпись HMAC-SHA256("order|payment")
	if !uc.verifier.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		uc.logger.Warn("VerifyPayment: invalid signature for order=%s, payment=%s", req.OrderID, req.PaymentID)
		return nil, ErrInvalidSignature
	}

	var (
		confirmed []int64
		bookings  []*domain.ReservationWithOwner
	)

	// 3. Условный переход PENDING -> CONFIRMED и счетчик купона в одной транзакции.
	// Подтверждаются только строки этого заказа, и только все сразу
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		confirmed, err = uc.reservationRepo.ConfirmPending(txCtx, ids, req.OrderID, req.PaymentID)
		if err != nil {
			uc.logger.Error("VerifyPayment: failed to confirm bookings %v: %v", ids, err)
			return fmt.Errorf("%w: failed to confirm bookings: %v", ErrInternal, err)
		}

		bookings, err = uc.reservationRepo.GetWithOwnerByIDs(txCtx, ids)
		if err != nil {
			uc.logger.Error("VerifyPayment: failed to get bookings %v: %v", ids, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if len(confirmed) == 0 {
			return checkAlreadyConfirmed(ids, bookings, req.OrderID, req.PaymentID)
		}

		// часть чекаута истекла до оплаты: откатываем подтверждение остальных строк
		if len(confirmed) < len(ids) {
			uc.logger.Warn("VerifyPayment: only %d of %d bookings were pending for order=%s",
				len(confirmed), len(ids), req.OrderID)
			return fmt.Errorf("%w: %d of %d bookings expired before payment",
				ErrBookingsExpired, len(ids)-len(confirmed), len(ids))
		}

		// 3.1. Купон учитывается один раз на чекаут
		if couponID := couponOf(bookings); couponID != nil {
			if err := uc.couponRepo.IncrementUsage(txCtx, *couponID); err != nil {
				uc.logger.Error("VerifyPayment: failed to increment usage of coupon id=%d: %v", *couponID, err)
				return fmt.Errorf("%w: failed to increment coupon usage: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		uc.logger.Warn("VerifyPayment: bookings %v not confirmed: %v", ids, err)
		return nil, err
	}

	// 4. Повторная проверка: брони уже подтверждены этим платежом
	if len(confirmed) == 0 {
		uc.logger.Info("VerifyPayment: bookings %v already confirmed by payment=%s", ids, req.PaymentID)
		return &Response{Bookings: bookings, AlreadyConfirmed: true}, nil
	}

	if uc.metrics != nil {
		uc.metrics.AddBookingsConfirmed(len(confirmed))
	}

	// 5. Уведомления: ошибки только логируются
	uc.notifier.notify(ctx, bookings, req.PaymentID, uc.timeProvider.Now())

	uc.logger.Info("VerifyPayment: confirmed bookings %v, order=%s, payment=%s", confirmed, req.OrderID, req.PaymentID)

	return &Response{Bookings: bookings}, nil
}

// checkAlreadyConfirmed разбирает случай, когда ни одна строка не сменила статус.
// Строка чужого заказа дает ErrOrderMismatch
func checkAlreadyConfirmed(ids []int64, bookings []*domain.ReservationWithOwner, orderID, paymentID string) error {
	if len(bookings) < len(ids) {
		return ErrBookingsNotFound
	}

	for _, b := range bookings {
		if b.PaymentID == nil || (*b.PaymentID != orderID && *b.PaymentID != paymentID) {
			return fmt.Errorf("%w: booking id=%d", ErrOrderMismatch, b.ID)
		}
	}

	for _, b := range bookings {
		if b.Status != domain.StatusConfirmed {
			return fmt.Errorf("%w: booking id=%d is %s", ErrBookingsExpired, b.ID, b.Status)
		}
		if *b.PaymentID != paymentID {
			return fmt.Errorf("%w: booking id=%d was paid by another payment", ErrBookingsExpired, b.ID)
		}
	}

	return nil
}

// couponOf купон чекаута (одинаковый у всех строк)
func couponOf(bookings []*domain.ReservationWithOwner) *int64 {
	for _, b := range bookings {
		if b.CouponID != nil {
			return b.CouponID
		}
	}
	return nil
}
