package get_dashboard_stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/infra/storage/stats"
)

// UseCase use case сводки для дашборда
type UseCase struct {
	statsRepo    StatsRepository
	pricingRepo  PricingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(statsRepo StatsRepository, pricingRepo PricingRepository, logger Logger) *UseCase {
	return &UseCase{
		statsRepo:    statsRepo,
		pricingRepo:  pricingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute собирает сводку. Все даты считаются по IST.
// Агрегаты независимы и запрашиваются параллельно
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	today := domain.BusinessToday(now)
	from := today.AddDate(0, 0, -(domain.DashboardRevenueDays - 1))
	currentHour := fmt.Sprintf("%02d:00", domain.BusinessHour(now))

	var (
		revenue        []stats.DailyRevenue
		activeBookings int
		totalUsers     int
		confirmedToday int
		overrides      []domain.PricingOverride
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		revenue, err = uc.statsRepo.RevenueByDate(gctx, from, today)
		return wrap("revenue by date", err)
	})
	g.Go(func() error {
		// текущий час еще идет и считается оставшимся
		var err error
		activeBookings, err = uc.statsRepo.CountUpcomingActive(gctx, today, today.AddDate(0, 0, domain.DashboardActiveAheadDays), currentHour)
		return wrap("count upcoming", err)
	})
	g.Go(func() error {
		var err error
		totalUsers, err = uc.statsRepo.CountUsers(gctx, domain.RoleUser)
		return wrap("count users", err)
	})
	g.Go(func() error {
		var err error
		confirmedToday, err = uc.statsRepo.CountConfirmedOn(gctx, today)
		return wrap("count confirmed", err)
	})
	g.Go(func() error {
		var err error
		overrides, err = uc.pricingRepo.GetByDate(gctx, today)
		return wrap("get overrides", err)
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetDashboardStats: %v", err)
		return nil, err
	}

	last7Days := fillDays(from, revenue)
	slotsToday := domain.DefaultSlotCount + domain.CustomSlotCount(overrides)

	return &Response{
		TodayRevenue:   last7Days[len(last7Days)-1].Revenue,
		ActiveBookings: activeBookings,
		TotalUsers:     totalUsers,
		OccupancyRate:  occupancy(confirmedToday, slotsToday),
		Last7Days:      last7Days,
	}, nil
}

// fillDays дополняет выручку нулями для дней без броней
func fillDays(from time.Time, revenue []stats.DailyRevenue) []DayRevenue {
	byDate := make(map[string]stats.DailyRevenue, len(revenue))
	for _, r := range revenue {
		byDate[domain.FormatDate(r.Date)] = r
	}

	days := make([]DayRevenue, 0, domain.DashboardRevenueDays)
	for i := 0; i < domain.DashboardRevenueDays; i++ {
		key := domain.FormatDate(from.AddDate(0, 0, i))
		r := byDate[key]
		days = append(days, DayRevenue{Date: key, Revenue: r.Revenue, Bookings: r.Bookings})
	}
	return days
}

// occupancy доля занятых часов в процентах, не больше 100
func occupancy(confirmed, total int) int {
	if total <= 0 {
		return 0
	}
	rate := int(math.Round(float64(confirmed) / float64(total) * 100))
	if rate > 100 {
		return 100
	}
	return rate
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
