package pricing

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// LegacyKeyPrefix префикс ключа старого формата хранения в таблице settings
const LegacyKeyPrefix = "CUSTOM_PRICING_"

type legacyEntry struct {
	Slot      string  `json:"slot"`
	Price     float64 `json:"price"`
	IsBlocked bool    `json:"isBlocked"`
}

// LegacyKeyDate извлекает дату из ключа "CUSTOM_PRICING_YYYY-MM-DD"
func LegacyKeyDate(key string) (time.Time, bool) {
	if !strings.HasPrefix(key, LegacyKeyPrefix) {
		return time.Time{}, false
	}
	date, err := domain.ParseDate(strings.TrimPrefix(key, LegacyKeyPrefix))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// DecodeLegacyOverrides разбирает JSON-массив {slot, price, isBlocked} из settings.
// Некорректный JSON дает пустой список, записи без слота пропускаются
func DecodeLegacyOverrides(date time.Time, raw string) []domain.PricingOverride {
	var entries []legacyEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []domain.PricingOverride{}
	}

	overrides := make([]domain.PricingOverride, 0, len(entries))
	for _, e := range entries {
		if _, err := domain.ParseSlotKey(e.Slot); err != nil {
			continue
		}
		overrides = append(overrides, domain.PricingOverride{
			Date:      domain.DateOnly(date),
			Slot:      e.Slot,
			Price:     e.Price,
			IsBlocked: e.IsBlocked,
		})
	}
	return overrides
}
