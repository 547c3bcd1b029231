package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOverrides_AddsNewSlotAndKeepsOld(t *testing.T) {
	existing := []PricingOverride{{Slot: "07:00-08:00", Price: 1200}}
	incoming := []PricingOverride{{Slot: "18:00-19:00", Price: 2000, IsBlocked: false}}

	merged := MergeOverrides(existing, incoming)

	require.Len(t, merged, 2)
	assert.Equal(t, "07:00-08:00", merged[0].Slot)
	assert.Equal(t, 1200.0, merged[0].Price)
	assert.Equal(t, "18:00-19:00", merged[1].Slot)
	assert.Equal(t, 2000.0, merged[1].Price)
}

func TestMergeOverrides_SameSlotReplaces(t *testing.T) {
	existing := []PricingOverride{
		{Slot: "07:00-08:00", Price: 1200},
		{Slot: "18:00-19:00", Price: 2000},
	}
	incoming := []PricingOverride{{Slot: "18:00-19:00", Price: 2500, IsBlocked: true}}

	merged := MergeOverrides(existing, incoming)

	require.Len(t, merged, 2)
	assert.Equal(t, 2500.0, merged[1].Price)
	assert.True(t, merged[1].IsBlocked)

	// повторное сохранение того же ключа не дублирует запись
	again := MergeOverrides(merged, incoming)
	assert.Equal(t, merged, again)
}

func TestCustomSlotCount(t *testing.T) {
	overrides := []PricingOverride{
		{Slot: "06:00-07:00"},
		{Slot: "05:00-06:00"},
		{Slot: "06:30-07:30"},
		{Slot: "05:00-06:00"},
	}
	assert.Equal(t, 2, CustomSlotCount(overrides))
}
