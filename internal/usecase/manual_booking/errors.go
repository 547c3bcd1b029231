package manual_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: manual_booking: invalid input data", domain.ErrValidation)

	// ErrSlotUnavailable возвращается, когда интервал пересекается с активной бронью
	ErrSlotUnavailable = fmt.Errorf("%w: manual_booking: one or more selected slots are already booked", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("manual_booking: internal error")
)
