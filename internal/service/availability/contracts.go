package availability

import (
	"context"
	"time"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ExpireStalePending(ctx context.Context, cutoff time.Time) (int64, error)
}

// Metrics счетчик просроченных удержаний
type Metrics interface {
	AddPendingExpired(n int64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
