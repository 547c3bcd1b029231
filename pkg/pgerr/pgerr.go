package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок postgres, которые обрабатываются явно
const (
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeSerializationFailure = "40001"
)

// Code возвращает SQLSTATE ошибки postgres или пустую строку
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

// IsForeignKeyViolation нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool {
	return Code(err) == CodeForeignKeyViolation
}

// IsSerializationFailure конфликт сериализуемой транзакции
func IsSerializationFailure(err error) bool {
	return Code(err) == CodeSerializationFailure
}
