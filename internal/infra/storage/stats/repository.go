package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("stats.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("stats.repository: failed to execute query")
)

// DailyRevenue выручка по подтвержденным броням за одну дату
type DailyRevenue struct {
	Date     time.Time `db:"date"`
	Revenue  float64   `db:"revenue"`
	Bookings int       `db:"bookings"`
}

// Repository read-only агрегаты для дашборда администратора
type Repository struct {
	db *sqlx.DB
}

// NewRepository создает новый экземпляр репозитория статистики
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// RevenueByDate сумма и количество CONFIRMED броней по датам в [from, to].
// Даты без броней в результат не попадают
func (r *Repository) RevenueByDate(ctx context.Context, from, to time.Time) ([]DailyRevenue, error) {
	query, args, err := psqlbuilder.Select(
		"date",
		"COALESCE(SUM(amount), 0) AS revenue",
		"COUNT(*) AS bookings",
	).
		From("reservations").
		Where(squirrel.Eq{"status": string(domain.StatusConfirmed)}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		GroupBy("date").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RevenueByDate - build select query: %v", ErrBuildQuery, err)
	}

	revenue := make([]DailyRevenue, 0)
	if err := r.db.SelectContext(ctx, &revenue, query, args...); err != nil {
		return nil, fmt.Errorf("%w: RevenueByDate - select: %v", ErrExecQuery, err)
	}

	return revenue, nil
}

// CountUpcomingActive количество активных часов брони с today по to.
// Для today учитываются только слоты, начинающиеся не раньше fromStart
func (r *Repository) CountUpcomingActive(ctx context.Context, today, to time.Time, fromStart string) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"status": []string{string(domain.StatusPending), string(domain.StatusConfirmed)}}).
		Where(squirrel.LtOrEq{"date": to}).
		Where(squirrel.Or{
			squirrel.Gt{"date": today},
			squirrel.And{
				squirrel.Eq{"date": today},
				squirrel.GtOrEq{"start_time": fromStart},
			},
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUpcomingActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%w: CountUpcomingActive - get: %v", ErrExecQuery, err)
	}

	return count, nil
}

// CountConfirmedOn количество подтвержденных часов брони на дату
func (r *Repository) CountConfirmedOn(ctx context.Context, date time.Time) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"status": string(domain.StatusConfirmed), "date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountConfirmedOn - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%w: CountConfirmedOn - get: %v", ErrExecQuery, err)
	}

	return count, nil
}

// CountUsers количество пользователей с ролью
func (r *Repository) CountUsers(ctx context.Context, role domain.Role) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"role": string(role)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUsers - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%w: CountUsers - get: %v", ErrExecQuery, err)
	}

	return count, nil
}
