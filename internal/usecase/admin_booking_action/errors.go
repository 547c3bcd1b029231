package admin_booking_action

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrPasswordRequired возвращается, если пароль администратора не передан
	ErrPasswordRequired = fmt.Errorf("%w: admin_booking_action: admin password required", domain.ErrValidation)

	// ErrUnauthorized возвращается, если администратор не найден или без пароля
	ErrUnauthorized = fmt.Errorf("%w: admin_booking_action: unauthorized", domain.ErrAuthorization)

	// ErrInvalidPassword возвращается при неверном пароле администратора
	ErrInvalidPassword = fmt.Errorf("%w: admin_booking_action: invalid password", domain.ErrAuthorization)

	// ErrBookingNotFound возвращается, когда бронь не найдена
	ErrBookingNotFound = fmt.Errorf("%w: admin_booking_action: booking not found", domain.ErrNotFound)

	// ErrPastBooking возвращается для уже начавшейся брони
	ErrPastBooking = fmt.Errorf("%w: admin_booking_action: cannot modify past bookings", domain.ErrValidation)

	// ErrAlreadyRefunded возвращается при повторном возврате
	ErrAlreadyRefunded = fmt.Errorf("%w: admin_booking_action: booking already refunded", domain.ErrConflict)

	// ErrRefundFailed возвращается, когда платежный шлюз отклонил возврат
	ErrRefundFailed = fmt.Errorf("%w: admin_booking_action: refund rejected by gateway", domain.ErrExternalService)

	// ErrInvalidAction возвращается для неизвестного действия
	ErrInvalidAction = fmt.Errorf("%w: admin_booking_action: unknown action", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admin_booking_action: internal error")
)
