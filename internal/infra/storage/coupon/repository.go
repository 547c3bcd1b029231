package coupon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/pgerr"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
)

var couponColumns = []string{
	"id",
	"code",
	"type",
	"value",
	"max_discount",
	"max_usage",
	"total_usage",
	"expiry_date",
	"is_active",
	"valid_date",
	"valid_slots",
	"created_at",
}

// Repository репозиторий купонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория купонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает купон, код приводится к верхнему регистру
func (r *Repository) Create(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	validSlots := c.ValidSlots
	if validSlots == nil {
		validSlots = []string{}
	}

	query, args, err := psqlbuilder.Insert("coupons").
		Columns(
			"code",
			"type",
			"value",
			"max_discount",
			"max_usage",
			"expiry_date",
			"is_active",
			"valid_date",
			"valid_slots",
		).
		Values(
			c.Code,
			c.Type,
			c.Value,
			c.MaxDiscount,
			c.MaxUsage,
			c.ExpiryDate,
			c.IsActive,
			c.ValidDate,
			pq.Array(validSlots),
		).
		Suffix("RETURNING id, total_usage, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.TotalUsage, &c.CreatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.ValidSlots = validSlots
	return c, nil
}

// GetByCode ищет купон по коду без учета регистра
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(couponColumns...).
		From("coupons").
		Where(squirrel.Expr("LOWER(code) = LOWER(?)", strings.TrimSpace(code))).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCoupon(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan coupon: %v", ErrScanRow, err)
	}

	return c, nil
}

// List возвращает все купоны с количеством броней, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := make([]string, 0, len(couponColumns)+1)
	for _, col := range couponColumns {
		columns = append(columns, "c."+col)
	}
	columns = append(columns, "(SELECT COUNT(*) FROM reservations r WHERE r.coupon_id = c.id) AS booking_count")

	query, args, err := psqlbuilder.Select(columns...).
		From("coupons c").
		OrderBy("c.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	coupons := make([]*domain.Coupon, 0)
	for rows.Next() {
		var c domain.Coupon
		dest := append(couponDest(&c), &c.BookingCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		normalize(&c)
		coupons = append(coupons, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return coupons, nil
}

// Delete удаляет купон; брони сохраняют историю с coupon_id = NULL
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("coupons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCouponNotFound
	}

	return nil
}

// IncrementUsage увеличивает счетчик использований на 1
func (r *Repository) IncrementUsage(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coupons").
		Set("total_usage", squirrel.Expr("total_usage + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCouponNotFound
	}

	return nil
}

func couponDest(c *domain.Coupon) []interface{} {
	return []interface{}{
		&c.ID,
		&c.Code,
		&c.Type,
		&c.Value,
		&c.MaxDiscount,
		&c.MaxUsage,
		&c.TotalUsage,
		&c.ExpiryDate,
		&c.IsActive,
		&c.ValidDate,
		pq.Array(&c.ValidSlots),
		&c.CreatedAt,
	}
}

func scanCoupon(row *sql.Row) (*domain.Coupon, error) {
	var c domain.Coupon
	if err := row.Scan(couponDest(&c)...); err != nil {
		return nil, err
	}
	normalize(&c)
	return &c, nil
}

// normalize приводит дату ограничения к полуночи UTC
func normalize(c *domain.Coupon) {
	if c.ValidDate != nil {
		d := domain.DateOnly(*c.ValidDate)
		c.ValidDate = &d
	}
}
