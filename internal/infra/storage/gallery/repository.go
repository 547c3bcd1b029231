package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/pgerr"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
)

var (
	// ErrImageNotFound возвращается, когда изображение не найдено
	ErrImageNotFound = errors.New("gallery.repository: image not found")

	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = errors.New("gallery.repository: category not found")

	// ErrDuplicateCategory возвращается при попытке создать существующую категорию
	ErrDuplicateCategory = errors.New("gallery.repository: category already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("gallery.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("gallery.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("gallery.repository: failed to scan row")
)

// Repository репозиторий галереи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория галереи
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCategory создает категорию
func (r *Repository) CreateCategory(ctx context.Context, name string) (*domain.GalleryCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	category := &domain.GalleryCategory{Name: strings.TrimSpace(name)}
	query, args, err := psqlbuilder.Insert("gallery_categories").
		Columns("name").
		Values(category.Name).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCategory - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&category.ID, &category.CreatedAt); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("%w: CreateCategory - execute insert: %v", ErrExecQuery, err)
	}

	return category, nil
}

// ListCategories возвращает категории по имени
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.GalleryCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at").
		From("gallery_categories").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.GalleryCategory, 0)
	for rows.Next() {
		var c domain.GalleryCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// CreateImage сохраняет изображение
func (r *Repository) CreateImage(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("gallery_images").
		Columns("category_id", "url", "public_id").
		Values(img.CategoryID, img.URL, img.PublicID).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateImage - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&img.ID, &img.CreatedAt); err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("%w: CreateImage - execute insert: %v", ErrExecQuery, err)
	}

	return img, nil
}

// GetImage получает изображение по ID
func (r *Repository) GetImage(ctx context.Context, id int64) (*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := imageSelect().Where(squirrel.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetImage - build select query: %v", ErrBuildQuery, err)
	}

	var img domain.GalleryImage
	err = executor.QueryRowContext(ctx, query, args...).Scan(imageDest(&img)...)
	if err == sql.ErrNoRows {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetImage - scan image: %v", ErrScanRow, err)
	}

	return &img, nil
}

// ListImages возвращает изображения, сначала новые
func (r *Repository) ListImages(ctx context.Context) ([]*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := imageSelect().OrderBy("i.created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListImages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListImages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(imageDest(&img)...); err != nil {
			return nil, fmt.Errorf("%w: ListImages - scan row: %v", ErrScanRow, err)
		}
		images = append(images, &img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListImages - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}

// DeleteImage удаляет изображение
func (r *Repository) DeleteImage(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("gallery_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteImage - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteImage - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteImage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrImageNotFound
	}

	return nil
}

func imageSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select("i.id", "i.category_id", "c.name", "i.url", "i.public_id", "i.created_at").
		From("gallery_images i").
		Join("gallery_categories c ON c.id = i.category_id")
}

func imageDest(img *domain.GalleryImage) []interface{} {
	return []interface{}{&img.ID, &img.CategoryID, &img.Category, &img.URL, &img.PublicID, &img.CreatedAt}
}
