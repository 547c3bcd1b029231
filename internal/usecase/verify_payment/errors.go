package verify_payment

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: verify_payment: invalid input data", domain.ErrValidation)

	// ErrInvalidSignature возвращается, когда подпись платежа не совпала
	ErrInvalidSignature = fmt.Errorf("%w: verify_payment: invalid signature", domain.ErrValidation)

	// ErrBookingsNotFound возвращается, когда брони чекаута не найдены
	ErrBookingsNotFound = fmt.Errorf("%w: verify_payment: bookings not found", domain.ErrNotFound)

	// ErrBookingsExpired возвращается, когда удержание истекло или бронь отменена до оплаты
	ErrBookingsExpired = fmt.Errorf("%w: verify_payment: bookings are no longer pending", domain.ErrConflict)

	// ErrOrderMismatch возвращается, когда брони принадлежат другому заказу
	ErrOrderMismatch = fmt.Errorf("%w: verify_payment: bookings do not belong to this order", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_payment: internal error")
)
