package availability

import "github.com/m04kA/TurfBookingService/internal/domain"

// Overlaps проверяет пересечение полуоткрытых интервалов [a.Start, a.End) и [b.Start, b.End)
// Касание границами (10:00-11:00 и 11:00-12:00) пересечением не считается
func Overlaps(a, b domain.Interval) bool {
	return a.Start.IsBefore(b.End) && b.Start.IsBefore(a.End)
}

// OverlapsLegacy трехчастная форма проверки: частичное пересечение слева,
// частичное пересечение справа и вложенность. Эквивалентна Overlaps для непустых интервалов
func OverlapsLegacy(a, b domain.Interval) bool {
	s1, e1 := a.Start, a.End
	s2, e2 := b.Start, b.End

	startsInside := !s1.IsBefore(s2) && s1.IsBefore(e2)
	endsInside := e1.IsAfter(s2) && !e1.IsAfter(e2)
	contains := !s1.IsAfter(s2) && !e1.IsBefore(e2)

	return startsInside || endsInside || contains
}

// HasAnyOverlap возвращает true, если хотя бы один запрошенный интервал пересекается
// хотя бы с одним существующим
func HasAnyOverlap(requested []domain.Interval, existing []domain.Interval) bool {
	for _, r := range requested {
		for _, e := range existing {
			if Overlaps(r, e) {
				return true
			}
		}
	}
	return false
}

// HasSelfOverlap возвращает true, если запрошенные интервалы пересекаются между собой
func HasSelfOverlap(requested []domain.Interval) bool {
	for i := range requested {
		for j := i + 1; j < len(requested); j++ {
			if Overlaps(requested[i], requested[j]) {
				return true
			}
		}
	}
	return false
}

// ReservationIntervals возвращает интервалы активных броней
func ReservationIntervals(reservations []*domain.Reservation) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(reservations))
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		intervals = append(intervals, r.Interval())
	}
	return intervals
}
