package coupons

import (
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = fmt.Errorf("%w: coupon not found", domain.ErrNotFound)

	// ErrDuplicateCode возвращается, если код уже занят
	ErrDuplicateCode = fmt.Errorf("%w: coupon code already exists", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("coupons.service: internal error")
)
