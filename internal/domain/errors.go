package domain

import "errors"

// Классы ошибок. Ошибки пакетов оборачивают один из них через %w,
// чтобы транспортный слой мог выбрать HTTP-статус по классу
var (
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrExternalService = errors.New("external service error")
	ErrNotFound        = errors.New("not found")
	ErrAuthorization   = errors.New("authorization error")
)
