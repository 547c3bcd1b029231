package admin_booking_action

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/TurfBookingService/internal/domain"
	userRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/user"
	"github.com/m04kA/TurfBookingService/internal/integrations/mailer"
	"github.com/m04kA/TurfBookingService/internal/service/pricing"
	"github.com/m04kA/TurfBookingService/pkg/password"
)

// UseCase use case отмены и возврата брони администратором.
// Оба действия требуют повторного ввода пароля администратора
type UseCase struct {
	userRepo        UserRepository
	reservationRepo ReservationRepository
	gateway         RefundGateway
	mailer          RefundMailer
	turfName        string
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. refundMailer может быть nil
func NewUseCase(
	userRepo UserRepository,
	reservationRepo ReservationRepository,
	gateway RefundGateway,
	refundMailer RefundMailer,
	turfName string,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
		gateway:         gateway,
		mailer:          refundMailer,
		turfName:        turfName,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет отмену или возврат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdminBookingAction: admin=%d, booking=%d, action=%s", req.AdminID, req.BookingID, req.Action)

	if req.Action != ActionCancel && req.Action != ActionRefund {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
	}

	// 1. Повторная проверка пароля администратора
	if err := uc.checkPassword(ctx, req.AdminID, req.Password); err != nil {
		return nil, err
	}

	// 2. Бронь
	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	// 3. Начавшиеся брони не меняются
	if booking.StartsAt().Before(uc.timeProvider.Now()) {
		uc.logger.Warn("AdminBookingAction: booking id=%d already started at %s", booking.ID, booking.StartsAt())
		return nil, ErrPastBooking
	}

	// 4. Действие
	if req.Action == ActionCancel {
		if err := uc.reservationRepo.Cancel(ctx, booking.ID); err != nil {
			uc.logger.Error("AdminBookingAction: failed to cancel booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}
		booking.Status = domain.StatusCancelled

		uc.logger.Info("AdminBookingAction: booking id=%d cancelled by admin=%d", booking.ID, req.AdminID)
		return &Response{Booking: booking, Message: "Booking cancelled"}, nil
	}

	return uc.refund(ctx, booking, req.AdminID)
}

// refund возвращает деньги через шлюз (для онлайн-оплаты) и отмечает бронь
func (uc *UseCase) refund(ctx context.Context, booking *domain.ReservationWithOwner, adminID int64) (*Response, error) {
	if booking.IsRefunded {
		return nil, ErrAlreadyRefunded
	}

	if booking.PaymentMode == domain.PaymentOnline && booking.PaymentID != nil && *booking.PaymentID != "" {
		refund, err := uc.gateway.RefundPayment(*booking.PaymentID, pricing.ToPaise(booking.Amount))
		if err != nil {
			uc.logger.Error("AdminBookingAction: refund of payment %s failed: %v", *booking.PaymentID, err)
			return nil, fmt.Errorf("%w: %v", ErrRefundFailed, err)
		}
		uc.logger.Info("AdminBookingAction: refund id=%s created for booking id=%d", refund.ID, booking.ID)
	}

	if err := uc.reservationRepo.MarkRefunded(ctx, booking.ID); err != nil {
		uc.logger.Error("AdminBookingAction: failed to mark booking id=%d refunded: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to mark refunded: %v", ErrInternal, err)
	}
	booking.Status = domain.StatusCancelled
	booking.IsRefunded = true

	uc.sendRefundEmail(booking)

	uc.logger.Info("AdminBookingAction: booking id=%d refunded by admin=%d", booking.ID, adminID)
	return &Response{Booking: booking, Message: "Booking refunded & money dispatched via Razorpay"}, nil
}

func (uc *UseCase) checkPassword(ctx context.Context, adminID int64, plain string) error {
	if plain == "" {
		return ErrPasswordRequired
	}

	admin, err := uc.userRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("AdminBookingAction: admin id=%d not found", adminID)
			return ErrUnauthorized
		}
		uc.logger.Error("AdminBookingAction: failed to get admin id=%d: %v", adminID, err)
		return fmt.Errorf("%w: failed to get admin: %v", ErrInternal, err)
	}
	if admin.PasswordHash == "" {
		return ErrUnauthorized
	}

	if err := password.Compare(admin.PasswordHash, plain); err != nil {
		uc.logger.Warn("AdminBookingAction: invalid password for admin id=%d", adminID)
		return ErrInvalidPassword
	}
	return nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.ReservationWithOwner, error) {
	bookings, err := uc.reservationRepo.GetWithOwnerByIDs(ctx, []int64{id})
	if err != nil {
		uc.logger.Error("AdminBookingAction: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return bookings[0], nil
}

// sendRefundEmail письмо о возврате. Ошибка только логируется
func (uc *UseCase) sendRefundEmail(booking *domain.ReservationWithOwner) {
	if uc.mailer == nil {
		return
	}
	to := booking.ContactEmail()
	if to == "" {
		return
	}

	err := uc.mailer.SendRefundReceipt(to, mailer.Receipt{
		CustomerName: booking.ContactName(),
		TurfName:     uc.turfName,
		BookingDate:  domain.FormatDate(booking.Date),
		TimeSlot:     booking.StartTime.String() + " - " + booking.EndTime.String(),
		AmountPaid:   booking.Amount,
		BookingID:    strconv.FormatInt(booking.ID, 10),
	})
	if err != nil {
		uc.logger.Warn("AdminBookingAction: failed to send refund email for booking id=%d: %v", booking.ID, err)
	}
}
