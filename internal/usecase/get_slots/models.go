package get_slots

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// Request модель запроса списка слотов
type Request struct {
	Date time.Time // полночь UTC
}

// Response список слотов на дату
type Response struct {
	Date  time.Time
	Slots []domain.DisplaySlot
}
