package pricing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
)

// Repository репозиторий переопределений цены и блокировок слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория переопределений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает переопределения на дату, отсортированные по слоту
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]domain.PricingOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("date", "slot", "price", "is_blocked", "updated_at").
		From("pricing_overrides").
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		OrderBy("slot ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanOverrides(rows)
}

// GetByDateRange получает переопределения в диапазоне дат включительно
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.PricingOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "slot", "price", "is_blocked", "updated_at").
		From("pricing_overrides").
		Where(squirrel.GtOrEq{"date": domain.DateOnly(from)}).
		Where(squirrel.LtOrEq{"date": domain.DateOnly(to)}).
		OrderBy("date ASC", "slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanOverrides(rows)
}

// Merge сохраняет переопределения на дату по ключу (date, slot):
// новые значения побеждают, остальные слоты даты не затрагиваются
func (r *Repository) Merge(ctx context.Context, date time.Time, entries []domain.PricingOverride) error {
	if len(entries) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := domain.DateOnly(date)
	insertBuilder := psqlbuilder.Insert("pricing_overrides").
		Columns("date", "slot", "price", "is_blocked")

	// Дубликаты слота внутри одного запроса ломают ON CONFLICT, поэтому сливаем заранее
	for _, e := range domain.MergeOverrides(nil, entries) {
		insertBuilder = insertBuilder.Values(day, e.Slot, e.Price, e.IsBlocked)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (date, slot) DO UPDATE SET price = EXCLUDED.price, is_blocked = EXCLUDED.is_blocked, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Merge - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Merge - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// ClearDate удаляет все переопределения даты
func (r *Repository) ClearDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_overrides").
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ClearDate - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ClearDate - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// Remove удаляет переопределение слота на дату. Отсутствие записи не ошибка
func (r *Repository) Remove(ctx context.Context, date time.Time, slot string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_overrides").
		Where(squirrel.Eq{"date": domain.DateOnly(date), "slot": slot}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanOverrides сканирует результаты запроса
func scanOverrides(rows *sql.Rows) ([]domain.PricingOverride, error) {
	overrides := make([]domain.PricingOverride, 0)

	for rows.Next() {
		var o domain.PricingOverride
		if err := rows.Scan(&o.Date, &o.Slot, &o.Price, &o.IsBlocked, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanOverrides - scan row: %v", ErrScanRow, err)
		}
		o.Date = domain.DateOnly(o.Date)
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}
