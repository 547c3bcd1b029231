package venue

import (
	"encoding/json"
	"strings"
)

// SettingsRequest тело POST /admin/settings: ключ -> значение.
// Значения-числа и bool от старой админки сохраняются их JSON записью
type SettingsRequest map[string]json.RawMessage

// ToServiceRequest приводит значения к строкам
func (r SettingsRequest) ToServiceRequest() map[string]string {
	values := make(map[string]string, len(r))
	for k, raw := range r {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			values[k] = s
			continue
		}
		text := strings.TrimSpace(string(raw))
		if text == "null" {
			text = ""
		}
		values[k] = text
	}
	return values
}
