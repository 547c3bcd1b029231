package domain

import "time"

// BlockAction действие администратора над слотом
type BlockAction string

const (
	ActionBlocked   BlockAction = "BLOCKED"
	ActionUnblocked BlockAction = "UNBLOCKED"
)

// BlockLogEntry запись журнала блокировок (хранятся последние BlockLogCap записей)
type BlockLogEntry struct {
	ID         int64
	CreatedAt  time.Time
	TargetDate time.Time
	Slot       string
	Action     BlockAction
	AdminName  string
}
