package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate возвращается при некорректной календарной дате
var ErrInvalidDate = fmt.Errorf("%w: invalid date, expected YYYY-MM-DD", ErrValidation)

// ParseDate разбирает "YYYY-MM-DD" (хвост "T..." отбрасывается) и возвращает полночь UTC.
// Дата собирается из явных компонентов, без парсинга с учетом локали,
// поэтому сдвига на день из-за часового пояса не бывает
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, ErrInvalidDate
	}

	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if err := errors.Join(errY, errM, errD); err != nil {
		return time.Time{}, ErrInvalidDate
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date нормализует 2025-02-30 в 2025-03-02 - такие даты отклоняем
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// FormatDate форматирует дату как "YYYY-MM-DD"
func FormatDate(d time.Time) string {
	return d.Format(DateFormat)
}

// DateOnly отбрасывает время, сохраняя календарный день в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BusinessToday возвращает сегодняшнюю дату площадки (IST) как полночь UTC
func BusinessToday(now time.Time) time.Time {
	return DateOnly(now.In(BusinessLocation))
}

// BusinessHour возвращает текущий час по IST
func BusinessHour(now time.Time) int {
	return now.In(BusinessLocation).Hour()
}

// EventTime момент начала слота в часовом поясе площадки
func EventTime(date time.Time, startMinutes int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, BusinessLocation).Add(time.Duration(startMinutes) * time.Minute)
}
