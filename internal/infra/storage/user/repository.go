package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/pgerr"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
)

var userColumns = []string{
	"id",
	"name",
	"phone",
	"email",
	"password_hash",
	"role",
	"status",
	"is_email_verified",
	"created_at",
	"updated_at",
}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if u.Status == "" {
		u.Status = domain.UserActive
	}

	query, args, err := psqlbuilder.Insert("users").
		Columns("name", "phone", "email", "password_hash", "role", "status", "is_email_verified").
		Values(u.Name, u.Phone, normalizeEmail(u.Email), u.PasswordHash, u.Role, u.Status, u.IsEmailVerified).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return u, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByPhone получает пользователя по телефону
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.getOne(ctx, "GetByPhone", squirrel.Eq{"phone": strings.TrimSpace(phone)})
}

// GetByEmail получает пользователя по email без учета регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Expr("LOWER(email) = LOWER(?)", strings.TrimSpace(email)))
}

// List возвращает пользователей, опционально только с указанной ролью
func (r *Repository) List(ctx context.Context, role *domain.Role) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC")

	if role != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"role": *role})
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

	users := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(userDest(&u)...); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}

// UpdateProfile обновляет имя и email. Смена email сбрасывает его подтверждение
func (r *Repository) UpdateProfile(ctx context.Context, id int64, name string, email *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	email = normalizeEmail(email)
	query, args, err := psqlbuilder.Update("users").
		Set("name", name).
		Set("email", email).
		Set("is_email_verified", squirrel.Expr("is_email_verified AND email IS NOT DISTINCT FROM ?", email)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	return r.execSingle(ctx, executor, "UpdateProfile", query, args)
}

// UpdatePassword сохраняет новый хеш пароля
func (r *Repository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.update(ctx, "UpdatePassword", id, map[string]interface{}{"password_hash": passwordHash})
}

// SetStatus меняет статус аккаунта
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	return r.update(ctx, "SetStatus", id, map[string]interface{}{"status": status})
}

// SetEmailVerified сохраняет email и отмечает его подтвержденным
func (r *Repository) SetEmailVerified(ctx context.Context, id int64, email string) error {
	return r.update(ctx, "SetEmailVerified", id, map[string]interface{}{
		"email":             normalizeEmail(&email),
		"is_email_verified": true,
	})
}

func (r *Repository) getOne(ctx context.Context, op string, pred squirrel.Sqlizer) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(userDest(&u)...)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	return &u, nil
}

func (r *Repository) update(ctx context.Context, op string, id int64, values map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		SetMap(values).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	return r.execSingle(ctx, executor, op, query, args)
}

func (r *Repository) execSingle(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func userDest(u *domain.User) []interface{} {
	return []interface{}{
		&u.ID,
		&u.Name,
		&u.Phone,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.IsEmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
}

// normalizeEmail пустой email хранится как NULL, иначе в нижнем регистре
func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.ToLower(strings.TrimSpace(*email))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
