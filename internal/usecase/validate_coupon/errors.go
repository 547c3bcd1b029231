package validate_coupon

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: validate_coupon: invalid input data", domain.ErrValidation)

	// ErrLoginRequired возвращается при проверке купона без входа
	ErrLoginRequired = fmt.Errorf("%w: validate_coupon: login required", domain.ErrAuthorization)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_coupon: internal error")
)
