package domain

import (
	"sort"
	"time"
)

// PricingOverride исключение из стандартной цены/доступности для одного слота в одну дату
type PricingOverride struct {
	Date      time.Time
	Slot      string // "HH:MM-HH:MM"
	Price     float64
	IsBlocked bool
	UpdatedAt time.Time
}

// MergeOverrides сливает incoming в existing по ключу слота: новые значения побеждают,
// остальные слоты сохраняются. Результат отсортирован по слоту
func MergeOverrides(existing, incoming []PricingOverride) []PricingOverride {
	merged := make(map[string]PricingOverride, len(existing)+len(incoming))
	for _, o := range existing {
		merged[o.Slot] = o
	}
	for _, o := range incoming {
		merged[o.Slot] = o
	}

	result := make([]PricingOverride, 0, len(merged))
	for _, o := range merged {
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Slot < result[j].Slot })
	return result
}

// OverridesBySlot индексирует переопределения по ключу слота
func OverridesBySlot(overrides []PricingOverride) map[string]PricingOverride {
	index := make(map[string]PricingOverride, len(overrides))
	for _, o := range overrides {
		index[o.Slot] = o
	}
	return index
}

// CustomSlotCount количество слотов вне стандартной сетки
func CustomSlotCount(overrides []PricingOverride) int {
	seen := make(map[string]struct{})
	for _, o := range overrides {
		if !IsDefaultSlot(o.Slot) {
			seen[o.Slot] = struct{}{}
		}
	}
	return len(seen)
}
