package initiate_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: initiate_booking: invalid input data", domain.ErrValidation)

	// ErrUnknownSlot возвращается, когда слота нет в сетке даты
	ErrUnknownSlot = fmt.Errorf("%w: initiate_booking: slot is not offered on this date", domain.ErrValidation)

	// ErrSlotInPast возвращается для уже прошедшего слота
	ErrSlotInPast = fmt.Errorf("%w: initiate_booking: slot is in the past", domain.ErrValidation)

	// ErrSlotBlocked возвращается для слота, закрытого администратором
	ErrSlotBlocked = fmt.Errorf("%w: initiate_booking: slot is blocked", domain.ErrConflict)

	// ErrSlotUnavailable возвращается, когда слот занят активной бронью
	ErrSlotUnavailable = fmt.Errorf("%w: initiate_booking: slot already booked or held", domain.ErrConflict)

	// ErrAmountMismatch возвращается, когда сумма клиента не совпадает с ценой слотов
	ErrAmountMismatch = fmt.Errorf("%w: initiate_booking: amount does not match slot prices", domain.ErrValidation)

	// ErrLoginRequired возвращается при попытке применить купон без входа
	ErrLoginRequired = fmt.Errorf("%w: initiate_booking: login required to use a coupon", domain.ErrAuthorization)

	// ErrPaymentGateway возвращается, когда шлюз не создал заказ.
	// Брони остаются PENDING и истекают по TTL
	ErrPaymentGateway = fmt.Errorf("%w: initiate_booking: payment gateway failure", domain.ErrExternalService)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("initiate_booking: internal error")
)
