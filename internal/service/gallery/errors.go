package gallery

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrImageNotFound возвращается, когда изображение не найдено
	ErrImageNotFound = fmt.Errorf("%w: image not found", domain.ErrNotFound)

	// ErrDuplicateCategory возвращается, если категория уже существует
	ErrDuplicateCategory = fmt.Errorf("%w: category already exists", domain.ErrConflict)

	// ErrUploadUnavailable хранилище медиа не настроено
	ErrUploadUnavailable = fmt.Errorf("%w: media storage is not configured", domain.ErrExternalService)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("gallery.service: internal error")
)
