package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule периодичность фоновой очистки просроченных удержаний
const DefaultSweepSchedule = "@every 1m"

// Sweeper освобождает просроченные PENDING-брони
type Sweeper interface {
	SweepStale(ctx context.Context) int64
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler фоновые задачи сервиса
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	timeout time.Duration
	logger  Logger
}

// NewScheduler создает планировщик. Задачи регистрируются в Start
func NewScheduler(sweeper Sweeper, timeout time.Duration, logger Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		sweeper: sweeper,
		timeout: timeout,
		logger:  logger,
	}
}

// Start регистрирует очистку удержаний по расписанию и запускает cron.
// Ленивая очистка при чтении слотов остается, фоновая нужна для дней без трафика
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Cron jobs started (sweep=%s)", schedule)
	return nil
}

// Stop останавливает планировщик и ждет завершения выполняющихся задач
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Cron jobs did not finish before shutdown: %v", ctx.Err())
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if expired := s.sweeper.SweepStale(ctx); expired > 0 {
		s.logger.Info("Cron sweep: released %d holds", expired)
	}
}
