package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
	reservationRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/TurfBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронями пользователя, сторожа и администратора
type Service struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetUserBookings история броней пользователя, сначала новые
func (s *Service) GetUserBookings(ctx context.Context, userID int64) ([]models.BookingResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	list, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(list), userID)
	return models.FromDomainReservationList(list), nil
}

// CancelByUser отменяет бронь владельцем.
// Отмена возможна не позже чем за 4 часа до начала, прошедшие и идущие брони не отменяются
func (s *Service) CancelByUser(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("CancelByUser: cancelling booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getByID(ctx, "CancelByUser", bookingID)
	if err != nil {
		return nil, err
	}

	// Пользователь может отменить только свою бронь
	if booking.UserID == nil || *booking.UserID != userID {
		s.logger.Warn("CancelByUser: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("CancelByUser: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	untilStart := booking.StartsAt().Sub(s.timeProvider.Now())
	if untilStart <= 0 {
		return nil, ErrPastBooking
	}
	if untilStart < domain.UserCancelNotice {
		s.logger.Warn("CancelByUser: booking id=%d starts in %s", bookingID, untilStart)
		return nil, ErrTooLateToCancel
	}

	if err := s.reservationRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CancelByUser: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: CancelByUser - repository error: %v", ErrInternal, err)
	}
	booking.Status = domain.StatusCancelled

	s.logger.Info("CancelByUser: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainReservation(booking), nil
}

// GetTodayConfirmed подтвержденные брони на сегодня (IST) по времени начала, для сторожа
func (s *Service) GetTodayConfirmed(ctx context.Context) ([]models.BookingResponse, error) {
	today := domain.BusinessToday(s.timeProvider.Now())
	status := domain.StatusConfirmed

	list, err := s.reservationRepo.List(ctx, domain.ReservationFilter{
		FromDate: &today,
		ToDate:   &today,
		Status:   &status,
	})
	if err != nil {
		s.logger.Error("GetTodayConfirmed: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetTodayConfirmed - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTodayConfirmed: %d bookings on %s", len(list), domain.FormatDate(today))
	return models.FromDomainReservationWithOwnerList(list), nil
}

// MarkArrived отмечает приход клиента
func (s *Service) MarkArrived(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	booking, err := s.getByID(ctx, "MarkArrived", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == domain.StatusCancelled {
		s.logger.Warn("MarkArrived: booking id=%d is cancelled", bookingID)
		return nil, ErrNotActive
	}

	if err := s.reservationRepo.MarkArrived(ctx, bookingID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("MarkArrived: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: MarkArrived - repository error: %v", ErrInternal, err)
	}
	booking.IsArrived = true

	s.logger.Info("MarkArrived: booking id=%d marked as arrived", bookingID)
	return models.FromDomainReservation(booking), nil
}

// List административный список с фильтром по периоду и имени
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]models.BookingResponse, error) {
	if req.FromDate != nil && req.ToDate != nil && req.ToDate.Before(*req.FromDate) {
		return nil, fmt.Errorf("%w: toDate is before fromDate", ErrInvalidInput)
	}

	list, err := s.reservationRepo.List(ctx, domain.ReservationFilter{
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		SearchName: req.SearchName,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(list))
	return models.FromDomainReservationWithOwnerList(list), nil
}

func (s *Service) getByID(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	booking, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
