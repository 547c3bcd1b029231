package domain

import "time"

// Role роль пользователя
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleWatchman Role = "WATCHMAN"
	RoleUser     Role = "USER"
)

// UserStatus статус аккаунта
type UserStatus string

const (
	UserActive  UserStatus = "ACTIVE"
	UserBlocked UserStatus = "BLOCKED"
)

// User аккаунт клиента или сотрудника
type User struct {
	ID              int64
	Name            string
	Phone           string
	Email           *string
	PasswordHash    string
	Role            Role
	Status          UserStatus
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBlocked возвращает true для заблокированного аккаунта
func (u *User) IsBlocked() bool {
	return u.Status == UserBlocked
}

// HasRole проверяет, что роль пользователя входит в список
func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Review отзыв пользователя
type Review struct {
	ID        int64
	UserID    int64
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// GalleryCategory категория галереи
type GalleryCategory struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// GalleryImage изображение галереи
type GalleryImage struct {
	ID         int64
	CategoryID int64
	Category   string
	URL        string
	PublicID   *string // id в хранилище медиа (для удаления)
	CreatedAt  time.Time
}

// Setting запись key-value настроек площадки (контакты, ссылки)
type Setting struct {
	Key   string
	Value string
}
