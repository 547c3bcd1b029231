package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/pgerr"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
)

// reservationColumns порядок колонок совпадает с scanReservation
var reservationColumns = []string{
	"id",
	"date",
	"start_time",
	"end_time",
	"status",
	"sport",
	"amount",
	"coupon_id",
	"user_id",
	"guest_name",
	"guest_phone",
	"guest_email",
	"payment_id",
	"payment_mode",
	"is_refunded",
	"is_arrived",
	"created_at",
	"updated_at",
}

// prefixed возвращает колонки с префиксом таблицы для запросов с JOIN
func prefixed(alias string, columns []string) []string {
	result := make([]string, len(columns))
	for i, c := range columns {
		result[i] = alias + "." + c
	}
	return result
}

// Repository репозиторий броней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронь.
// Нарушение уникального индекса активного слота или конфликт сериализации
// возвращаются как ErrSlotTaken
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	paymentMode := res.PaymentMode
	if paymentMode == "" {
		paymentMode = domain.PaymentOnline
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"date",
			"start_time",
			"end_time",
			"status",
			"sport",
			"amount",
			"coupon_id",
			"user_id",
			"guest_name",
			"guest_phone",
			"guest_email",
			"payment_id",
			"payment_mode",
		).
		Values(
			res.Date,
			res.StartTime,
			res.EndTime,
			res.Status,
			res.Sport,
			res.Amount,
			res.CouponID,
			res.UserID,
			res.GuestName,
			res.GuestPhone,
			res.GuestEmail,
			res.PaymentID,
			paymentMode,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pgerr.IsUniqueViolation(err) || pgerr.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: %s %s", ErrSlotTaken, domain.FormatDate(res.Date), res.Interval().Key())
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.PaymentMode = paymentMode
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByIDs получает брони по списку ID, отсортированные по времени начала
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Reservation, error) {
	if len(ids) == 0 {
		return []*domain.Reservation{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("start_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetActiveByDate получает PENDING и CONFIRMED брони на дату
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ExpireStalePending переводит в CANCELLED все PENDING, созданные раньше cutoff
// Повторный вызов без новых PENDING ничего не меняет
func (r *Repository) ExpireStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStalePending - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStalePending - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStalePending - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// SetPaymentRef сохраняет id заказа платежного шлюза для всех броней чекаута
func (r *Repository) SetPaymentRef(ctx context.Context, ids []int64, orderID string) error {
	if len(ids) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("payment_id", orderID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaymentRef - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetPaymentRef - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// ConfirmPending условно переводит PENDING-брони заказа orderID из ids в CONFIRMED
// и заменяет id заказа на id платежа.
// Уже подтвержденные, отмененные и чужие строки не затрагиваются.
// Возвращает ID строк, которые действительно сменили статус
func (r *Repository) ConfirmPending(ctx context.Context, ids []int64, orderID, paymentID string) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusConfirmed).
		Set("payment_id", paymentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Eq{"payment_id": orderID}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ConfirmPending - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ConfirmPending - execute update: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	confirmed := make([]int64, 0, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ConfirmPending - scan id: %v", ErrScanRow, err)
		}
		confirmed = append(confirmed, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ConfirmPending - rows error: %v", ErrScanRow, err)
	}

	return confirmed, nil
}

// CancelByIDs переводит активные брони из ids в CANCELLED, возвращает число отмененных
func (r *Repository) CancelByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CancelByIDs - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelByIDs - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelByIDs - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Cancel отменяет бронь
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execSingle(ctx, executor, "Cancel", query, args)
}

// MarkRefunded отмечает бронь возвращенной и отменяет ее
func (r *Repository) MarkRefunded(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("is_refunded", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRefunded - build update query: %v", ErrBuildQuery, err)
	}

	return r.execSingle(ctx, executor, "MarkRefunded", query, args)
}

// MarkArrived отмечает приход клиента
func (r *Repository) MarkArrived(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("is_arrived", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkArrived - build update query: %v", ErrBuildQuery, err)
	}

	return r.execSingle(ctx, executor, "MarkArrived", query, args)
}

// GetByUserID получает брони пользователя, сначала новые
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC", "start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// List получает брони с данными владельца для административных списков.
// Для одной даты сортирует по времени начала, иначе сначала новые
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationWithOwner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(prefixed("r", reservationColumns), "u.name", "u.phone", "u.email")
	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations r").
		LeftJoin("users u ON u.id = r.user_id")

	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"r.date": domain.DateOnly(*filter.FromDate)})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"r.date": domain.DateOnly(*filter.ToDate)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.status": *filter.Status})
	}
	if filter.SearchName != nil && strings.TrimSpace(*filter.SearchName) != "" {
		pattern := "%" + strings.TrimSpace(*filter.SearchName) + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"r.guest_name": pattern},
			squirrel.ILike{"u.name": pattern},
		})
	}

	if filter.FromDate != nil && filter.ToDate != nil && filter.FromDate.Equal(*filter.ToDate) {
		selectBuilder = selectBuilder.OrderBy("r.start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("r.date DESC", "r.start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ReservationWithOwner, 0)
	for rows.Next() {
		var item domain.ReservationWithOwner
		dest := append(reservationDest(&item.Reservation), &item.OwnerName, &item.OwnerPhone, &item.OwnerEmail)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetWithOwnerByIDs брони из ids с данными владельца (для уведомлений)
func (r *Repository) GetWithOwnerByIDs(ctx context.Context, ids []int64) ([]*domain.ReservationWithOwner, error) {
	if len(ids) == 0 {
		return []*domain.ReservationWithOwner{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(prefixed("r", reservationColumns), "u.name", "u.phone", "u.email")
	query, args, err := psqlbuilder.Select(columns...).
		From("reservations r").
		LeftJoin("users u ON u.id = r.user_id").
		Where(squirrel.Eq{"r.id": ids}).
		OrderBy("r.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWithOwnerByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithOwnerByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ReservationWithOwner, 0, len(ids))
	for rows.Next() {
		var item domain.ReservationWithOwner
		dest := append(reservationDest(&item.Reservation), &item.OwnerName, &item.OwnerPhone, &item.OwnerEmail)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: GetWithOwnerByIDs - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithOwnerByIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// LinkGuestBookings привязывает гостевые брони с этим телефоном к пользователю
func (r *Repository) LinkGuestBookings(ctx context.Context, phone string, userID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("user_id", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"guest_phone": phone}).
		Where(squirrel.Eq{"user_id": nil}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: LinkGuestBookings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: LinkGuestBookings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: LinkGuestBookings - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// execSingle выполняет UPDATE одной строки, ErrReservationNotFound если строка не найдена
func (r *Repository) execSingle(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// reservationDest указатели полей в порядке reservationColumns
func reservationDest(res *domain.Reservation) []interface{} {
	return []interface{}{
		&res.ID,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.Status,
		&res.Sport,
		&res.Amount,
		&res.CouponID,
		&res.UserID,
		&res.GuestName,
		&res.GuestPhone,
		&res.GuestEmail,
		&res.PaymentID,
		&res.PaymentMode,
		&res.IsRefunded,
		&res.IsArrived,
		&res.CreatedAt,
		&res.UpdatedAt,
	}
}

// scanReservation сканирует одну строку
func scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := row.Scan(reservationDest(&res)...); err != nil {
		return nil, err
	}
	res.Date = domain.DateOnly(res.Date)
	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(reservationDest(&res)...); err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		res.Date = domain.DateOnly(res.Date)
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// statusStrings конвертирует статусы для squirrel.Eq (IN)
func statusStrings(statuses []domain.ReservationStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
