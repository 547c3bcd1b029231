package blocklog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blocklog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blocklog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blocklog.repository: failed to scan row")
)

// Repository журнал блокировок слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр журнала блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал
func (r *Repository) Append(ctx context.Context, entry *domain.BlockLogEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("block_logs").
		Columns("target_date", "slot", "action", "admin_name").
		Values(domain.DateOnly(entry.TargetDate), entry.Slot, entry.Action, entry.AdminName).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Trim оставляет только keep последних записей
func (r *Repository) Trim(ctx context.Context, keep int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	newest := psqlbuilder.Select("id").
		From("block_logs").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(keep))

	newestSQL, newestArgs, err := newest.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Trim - build subquery: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Delete("block_logs").
		Where(squirrel.Expr("id NOT IN ("+newestSQL+")", newestArgs...)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Trim - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Trim - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Trim - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// List возвращает последние limit записей, сначала новые
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.BlockLogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "created_at", "target_date", "slot", "action", "admin_name").
		From("block_logs").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.BlockLogEntry, 0)
	for rows.Next() {
		var e domain.BlockLogEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.TargetDate, &e.Slot, &e.Action, &e.AdminName); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		e.TargetDate = domain.DateOnly(e.TargetDate)
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
