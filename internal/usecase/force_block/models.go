package force_block

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// Request запрос на ручную блокировку или разблокировку слота
type Request struct {
	Date      time.Time
	Slot      string
	IsBlocked bool
	AdminName string
}

// Response результат операции
type Response struct {
	Action         domain.BlockAction
	CancelledCount int64
	Message        string
}
