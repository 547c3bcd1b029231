package force_block

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: force_block: invalid input data", domain.ErrValidation)

	// ErrConcurrentUpdate возвращается, когда слот меняется параллельно и повторы исчерпаны
	ErrConcurrentUpdate = fmt.Errorf("%w: force_block: slot is being modified concurrently", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("force_block: internal error")
)
