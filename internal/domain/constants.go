package domain

import "time"

// Значения по умолчанию для площадки
const (
	DefaultSlotPrice         = 1500.0
	DefaultOpenHour          = 6
	DefaultCloseHour         = 24
	DefaultSlotCount         = DefaultCloseHour - DefaultOpenHour // 18 слотов
	SlotDurationMinutes      = 60
	PendingHoldTTL           = 10 * time.Minute
	BlockLogCap              = 100
	ForwardCopyDays          = 30
	UserCancelNotice         = 4 * time.Hour
	TurfInfoLookaheadDays    = 14
	DashboardRevenueDays     = 7
	DashboardActiveAheadDays = 30
)

// Бизнес-ограничения
const (
	MaxSlotsPerBooking = DefaultSlotCount + 6
	MinReviewRating    = 1
	MaxReviewRating    = 5
	MaxReviewLength    = 1000
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BusinessLocation часовой пояс площадки (IST, UTC+05:30, без перехода на летнее время)
var BusinessLocation = time.FixedZone("IST", 5*60*60+30*60)
