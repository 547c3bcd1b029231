package domain

import (
	"fmt"
	"strings"

	"github.com/m04kA/TurfBookingService/pkg/types"
)

// ErrInvalidSlot возвращается при некорректной строке слота "HH:MM-HH:MM"
var ErrInvalidSlot = fmt.Errorf("%w: invalid slot, expected HH:MM-HH:MM", ErrValidation)

// Interval полуоткрытый интервал времени [Start, End) внутри одних суток
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Key возвращает каноническое представление "HH:MM-HH:MM"
func (i Interval) Key() string {
	return i.Start.String() + "-" + i.End.String()
}

// DurationMinutes длительность интервала в минутах
func (i Interval) DurationMinutes() int {
	return i.End.Minutes() - i.Start.Minutes()
}

// Validate проверяет формат границ и что Start < End
func (i Interval) Validate() error {
	if err := i.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start %q", ErrInvalidSlot, i.Start)
	}
	if err := i.End.Validate(); err != nil {
		return fmt.Errorf("%w: end %q", ErrInvalidSlot, i.End)
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidSlot)
	}
	return nil
}

// ParseSlotKey разбирает "HH:MM-HH:MM"
func ParseSlotKey(key string) (Interval, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(key), "-")
	if !ok {
		return Interval{}, ErrInvalidSlot
	}
	interval := Interval{
		Start: types.TimeString(strings.TrimSpace(start)),
		End:   types.TimeString(strings.TrimSpace(end)),
	}
	if err := interval.Validate(); err != nil {
		return Interval{}, err
	}
	return interval, nil
}

// ParseHourSlotKey разбирает слот и требует длительность ровно 1 час
func ParseHourSlotKey(key string) (Interval, error) {
	interval, err := ParseSlotKey(key)
	if err != nil {
		return Interval{}, err
	}
	if interval.DurationMinutes() != SlotDurationMinutes {
		return Interval{}, fmt.Errorf("%w: slot %s must be exactly 1 hour", ErrInvalidSlot, key)
	}
	return interval, nil
}

// DefaultSlotKeys возвращает стандартную сетку из 18 часовых слотов 06:00-24:00
func DefaultSlotKeys() []string {
	keys := make([]string, 0, DefaultSlotCount)
	for h := DefaultOpenHour; h < DefaultCloseHour; h++ {
		keys = append(keys, fmt.Sprintf("%02d:00-%02d:00", h, h+1))
	}
	return keys
}

// IsDefaultSlot сообщает, входит ли слот в стандартную сетку
func IsDefaultSlot(key string) bool {
	interval, err := ParseSlotKey(key)
	if err != nil {
		return false
	}
	h := interval.Start.Hour()
	return interval.Start.Minutes() == h*60 &&
		h >= DefaultOpenHour && h < DefaultCloseHour &&
		interval.DurationMinutes() == SlotDurationMinutes
}

// DisplaySlot слот, как его видит клиент (с вычисленной ценой и флагами)
type DisplaySlot struct {
	StartTime      types.TimeString
	EndTime        types.TimeString
	Price          float64
	IsBooked       bool // итоговый флаг: IsHardBooked || IsAdminBlocked || IsPastSlot
	IsHardBooked   bool
	IsAdminBlocked bool
	IsPastSlot     bool
}

// Key возвращает "HH:MM-HH:MM"
func (s DisplaySlot) Key() string {
	return s.StartTime.String() + "-" + s.EndTime.String()
}
