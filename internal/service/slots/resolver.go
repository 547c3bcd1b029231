package slots

import (
	"sort"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/availability"
)

// Resolve строит список слотов на дату: стандартная сетка плюс кастомные слоты из
// переопределений, с ценой и флагами занятости. Чистая функция без побочных эффектов.
//
// Слот считается прошедшим, если дата раньше сегодняшней (IST) или дата сегодняшняя
// и час начала слота <= текущего часа (IST). Текущий час закрыт для бронирования.
//
// Переопределения с некорректным ключом слота пропускаются
func Resolve(
	date time.Time,
	overrides []domain.PricingOverride,
	activeReservations []*domain.Reservation,
	now time.Time,
	defaultPrice float64,
) []domain.DisplaySlot {
	overrideBySlot := domain.OverridesBySlot(overrides)
	booked := availability.ReservationIntervals(activeReservations)

	// Шаг 1: объединяем стандартную сетку с кастомными слотами
	keys := domain.DefaultSlotKeys()
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	for _, o := range overrides {
		if _, ok := seen[o.Slot]; ok {
			continue
		}
		if _, err := domain.ParseHourSlotKey(o.Slot); err != nil {
			continue
		}
		seen[o.Slot] = struct{}{}
		keys = append(keys, o.Slot)
	}

	// Лексикографическая сортировка "HH:MM-HH:MM" совпадает с хронологической
	sort.Strings(keys)

	// Шаг 2: вычисляем границу "прошедших" слотов
	today := domain.BusinessToday(now)
	day := domain.DateOnly(date)
	currentHour := domain.BusinessHour(now)

	result := make([]domain.DisplaySlot, 0, len(keys))
	for _, key := range keys {
		interval, err := domain.ParseSlotKey(key)
		if err != nil {
			continue
		}

		s := domain.DisplaySlot{
			StartTime: interval.Start,
			EndTime:   interval.End,
			Price:     defaultPrice,
		}

		if o, ok := overrideBySlot[key]; ok {
			s.Price = o.Price
			s.IsAdminBlocked = o.IsBlocked
		}

		for _, b := range booked {
			if availability.Overlaps(interval, b) {
				s.IsHardBooked = true
				break
			}
		}

		s.IsPastSlot = isPastSlot(day, today, interval, currentHour)
		s.IsBooked = s.IsHardBooked || s.IsAdminBlocked || s.IsPastSlot

		result = append(result, s)
	}

	return result
}

// isPastSlot проверяет, что слот уже недоступен по времени
func isPastSlot(day, today time.Time, interval domain.Interval, currentHour int) bool {
	if day.Before(today) {
		return true
	}
	if day.Equal(today) {
		return interval.Start.Hour() <= currentHour
	}
	return false
}

// IsPast проверяет, что слот на дату уже прошел относительно now
func IsPast(date time.Time, interval domain.Interval, now time.Time) bool {
	return isPastSlot(domain.DateOnly(date), domain.BusinessToday(now), interval, domain.BusinessHour(now))
}

// FindSlot ищет слот по ключу в результате Resolve
func FindSlot(resolved []domain.DisplaySlot, key string) (domain.DisplaySlot, bool) {
	for _, s := range resolved {
		if s.Key() == key {
			return s, true
		}
	}
	return domain.DisplaySlot{}, false
}

// MinPrice минимальная цена среди незаблокированных слотов; ok=false для пустого списка
func MinPrice(resolved []domain.DisplaySlot) (float64, bool) {
	found := false
	minPrice := 0.0
	for _, s := range resolved {
		if s.IsAdminBlocked {
			continue
		}
		if !found || s.Price < minPrice {
			minPrice = s.Price
			found = true
		}
	}
	return minPrice, found
}
