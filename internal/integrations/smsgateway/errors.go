package smsgateway

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = fmt.Errorf("%w: smsgateway client: internal error", domain.ErrExternalService)

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = fmt.Errorf("%w: smsgateway client: invalid response", domain.ErrExternalService)

	// ErrRejected возвращается, когда шлюз отклонил сообщение (неверный номер и т.п.)
	ErrRejected = fmt.Errorf("%w: smsgateway client: message rejected", domain.ErrExternalService)

	// ErrEmptyRecipient возвращается, если номер получателя пустой
	ErrEmptyRecipient = errors.New("smsgateway client: empty recipient")
)
