package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// istAt возвращает момент времени по IST
func istAt(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, domain.BusinessLocation)
}

func TestResolve_DefaultGrid(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := istAt(2025, 3, 9, 12, 0)

	resolved := Resolve(date, nil, nil, now, domain.DefaultSlotPrice)

	require.Len(t, resolved, 18)
	assert.Equal(t, "06:00-07:00", resolved[0].Key())
	assert.Equal(t, "23:00-24:00", resolved[17].Key())
	for _, s := range resolved {
		assert.Equal(t, 1500.0, s.Price, s.Key())
		assert.False(t, s.IsBooked, s.Key())
	}

	// детерминированность
	assert.Equal(t, resolved, Resolve(date, nil, nil, now, domain.DefaultSlotPrice))
}

func TestResolve_OverridesAndCustomSlots(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := istAt(2025, 3, 9, 12, 0)
	overrides := []domain.PricingOverride{
		{Slot: "18:00-19:00", Price: 2000},
		{Slot: "20:00-21:00", Price: 1500, IsBlocked: true},
		{Slot: "05:00-06:00", Price: 900},
		{Slot: "bogus", Price: 1},
		{Slot: "04:00-06:00", Price: 1}, // не часовой слот
	}

	resolved := Resolve(date, overrides, nil, now, domain.DefaultSlotPrice)

	require.Len(t, resolved, 19)
	assert.Equal(t, "05:00-06:00", resolved[0].Key())
	assert.Equal(t, 900.0, resolved[0].Price)

	evening, ok := FindSlot(resolved, "18:00-19:00")
	require.True(t, ok)
	assert.Equal(t, 2000.0, evening.Price)
	assert.False(t, evening.IsBooked)

	blocked, ok := FindSlot(resolved, "20:00-21:00")
	require.True(t, ok)
	assert.True(t, blocked.IsAdminBlocked)
	assert.True(t, blocked.IsBooked)
	assert.False(t, blocked.IsHardBooked)

	minPrice, ok := MinPrice(resolved)
	require.True(t, ok)
	assert.Equal(t, 900.0, minPrice)
}

func TestResolve_HardBooked(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := istAt(2025, 3, 9, 12, 0)
	reservations := []*domain.Reservation{
		{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
		{StartTime: "12:30", EndTime: "13:30", Status: domain.StatusPending},
		{StartTime: "15:00", EndTime: "16:00", Status: domain.StatusCancelled},
	}

	resolved := Resolve(date, nil, reservations, now, domain.DefaultSlotPrice)

	booked := map[string]bool{}
	for _, s := range resolved {
		booked[s.Key()] = s.IsHardBooked
	}
	assert.True(t, booked["10:00-11:00"])
	assert.False(t, booked["11:00-12:00"])
	assert.True(t, booked["12:00-13:00"])
	assert.True(t, booked["13:00-14:00"])
	assert.False(t, booked["15:00-16:00"])
}

func TestResolve_PastSlotCutoff(t *testing.T) {
	// сегодня по IST, 14:20
	now := istAt(2025, 3, 9, 14, 20)
	today := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	resolved := Resolve(today, nil, nil, now, domain.DefaultSlotPrice)

	current, ok := FindSlot(resolved, "14:00-15:00")
	require.True(t, ok)
	assert.True(t, current.IsPastSlot)
	assert.True(t, current.IsBooked)

	next, ok := FindSlot(resolved, "15:00-16:00")
	require.True(t, ok)
	assert.False(t, next.IsPastSlot)
	assert.False(t, next.IsBooked)

	first, _ := FindSlot(resolved, "06:00-07:00")
	assert.True(t, first.IsPastSlot)
}

func TestResolve_PastDate(t *testing.T) {
	now := istAt(2025, 3, 9, 7, 0)
	yesterday := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)

	for _, s := range Resolve(yesterday, nil, nil, now, domain.DefaultSlotPrice) {
		assert.True(t, s.IsPastSlot, s.Key())
	}
}

func TestResolve_TodayIsDecidedInIST(t *testing.T) {
	// 2025-03-09 20:00 UTC = 2025-03-10 01:30 IST, значит 10 марта уже сегодня
	now := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	resolved := Resolve(date, nil, nil, now, domain.DefaultSlotPrice)

	first, _ := FindSlot(resolved, "06:00-07:00")
	assert.False(t, first.IsPastSlot)

	yesterday := Resolve(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), nil, nil, now, domain.DefaultSlotPrice)
	last, _ := FindSlot(yesterday, "23:00-24:00")
	assert.True(t, last.IsPastSlot)
}
