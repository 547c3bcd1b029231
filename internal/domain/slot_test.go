package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/pkg/types"
)

func TestDefaultSlotKeys(t *testing.T) {
	keys := DefaultSlotKeys()

	require.Len(t, keys, 18)
	assert.Equal(t, "06:00-07:00", keys[0])
	assert.Equal(t, "23:00-24:00", keys[17])
}

func TestParseSlotKey(t *testing.T) {
	interval, err := ParseSlotKey("18:00-19:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), interval.Start)
	assert.Equal(t, types.TimeString("19:00"), interval.End)
	assert.Equal(t, "18:00-19:00", interval.Key())

	_, err = ParseSlotKey("19:00-18:00")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseSlotKey("18:00")
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = ParseHourSlotKey("18:00-19:30")
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestIsDefaultSlot(t *testing.T) {
	assert.True(t, IsDefaultSlot("06:00-07:00"))
	assert.True(t, IsDefaultSlot("23:00-24:00"))
	assert.False(t, IsDefaultSlot("05:00-06:00"))
	assert.False(t, IsDefaultSlot("06:30-07:30"))
	assert.False(t, IsDefaultSlot("garbage"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-03-09T18:30:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "2025-3-9", "2025-02-30", "09-03-2025", "abcd-ef-gh"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestBusinessToday(t *testing.T) {
	// 20:00 UTC это уже 01:30 следующего дня по IST
	now := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), BusinessToday(now))
	assert.Equal(t, 1, BusinessHour(now))
}

func TestReservation_StartsAt(t *testing.T) {
	r := Reservation{Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), StartTime: "18:00"}
	assert.True(t, r.StartsAt().Equal(time.Date(2025, 3, 9, 12, 30, 0, 0, time.UTC)))
}
