package auth

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrInvalidCredentials неверный логин или пароль (401)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", domain.ErrAuthorization)

	// ErrAccountBlocked аккаунт заблокирован администратором
	ErrAccountBlocked = fmt.Errorf("%w: your account has been blocked, contact admin", domain.ErrAuthorization)

	// ErrRoleDenied роль пользователя не совпадает с запрошенной панелью
	ErrRoleDenied = fmt.Errorf("%w: access denied for this role", domain.ErrAuthorization)

	// ErrEmailNotVerified сброс пароля по email требует подтвержденного email
	ErrEmailNotVerified = fmt.Errorf("%w: email is not verified, log in using phone OTP and verify your email in your profile first", domain.ErrAuthorization)

	// ErrUserExists телефон или email уже зарегистрированы
	ErrUserExists = fmt.Errorf("%w: user already exists with this phone or email", domain.ErrConflict)

	// ErrUserNotFound аккаунт не найден
	ErrUserNotFound = fmt.Errorf("%w: no account found", domain.ErrNotFound)

	// ErrNoEmail в профиле нет email
	ErrNoEmail = fmt.Errorf("%w: no email found on profile", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrOTPUnavailable канал доставки кода выключен
	ErrOTPUnavailable = fmt.Errorf("%w: OTP service is not configured", domain.ErrExternalService)

	// ErrOTPDelivery ошибка отправки кода
	ErrOTPDelivery = fmt.Errorf("%w: failed to send OTP", domain.ErrExternalService)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth.service: internal error")
)
