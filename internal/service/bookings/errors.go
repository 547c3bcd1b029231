package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: booking not found", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда бронь принадлежит другому пользователю
	ErrAccessDenied = fmt.Errorf("%w: access denied", domain.ErrAuthorization)

	// ErrCannotCancel возвращается, когда бронь уже отменена
	ErrCannotCancel = fmt.Errorf("%w: booking cannot be cancelled", domain.ErrConflict)

	// ErrTooLateToCancel возвращается, если до начала меньше UserCancelNotice
	ErrTooLateToCancel = fmt.Errorf("%w: cancellations are only allowed at least 4 hours before the booking time", domain.ErrValidation)

	// ErrPastBooking возвращается для прошедшей или идущей брони
	ErrPastBooking = fmt.Errorf("%w: cannot cancel a past or ongoing booking", domain.ErrValidation)

	// ErrNotActive возвращается при отметке прихода по отмененной брони
	ErrNotActive = fmt.Errorf("%w: booking is not active", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
