package razorpay

import (
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrCreateOrder возвращается, когда шлюз не создал заказ
	ErrCreateOrder = fmt.Errorf("%w: razorpay: failed to create order", domain.ErrExternalService)

	// ErrRefund возвращается, когда шлюз отклонил возврат
	ErrRefund = fmt.Errorf("%w: razorpay: refund rejected", domain.ErrExternalService)

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = fmt.Errorf("%w: razorpay: invalid response", domain.ErrExternalService)
)
