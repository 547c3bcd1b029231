package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// CodeLength длина одноразового кода
const CodeLength = 6

// Purpose назначение кода; разные назначения не пересекаются
type Purpose string

const (
	PurposeRegister      Purpose = "register"
	PurposeLogin         Purpose = "login"
	PurposeEmailVerify   Purpose = "email_verify"
	PurposePasswordReset Purpose = "password_reset"
)

var (
	// ErrCodeNotFound код не выдавался или истек
	ErrCodeNotFound = fmt.Errorf("%w: invalid or expired OTP", domain.ErrValidation)

	// ErrCodeMismatch неверный код
	ErrCodeMismatch = fmt.Errorf("%w: invalid or expired OTP", domain.ErrValidation)

	// ErrTooManyAttempts исчерпаны попытки ввода, код сброшен
	ErrTooManyAttempts = fmt.Errorf("%w: too many OTP attempts, request a new code", domain.ErrValidation)

	// ErrStorage ошибка Redis
	ErrStorage = errors.New("otp.cache: storage error")
)

// Cache хранилище одноразовых кодов в Redis с TTL и счетчиком попыток
type Cache struct {
	rdb         redis.Cmdable
	ttl         time.Duration
	maxAttempts int64
}

// NewCache создает новый экземпляр кеша кодов
func NewCache(rdb redis.Cmdable, ttl time.Duration, maxAttempts int) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, maxAttempts: int64(maxAttempts)}
}

// Issue генерирует и сохраняет новый код, сбрасывая счетчик попыток
func (c *Cache) Issue(ctx context.Context, purpose Purpose, subject string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, codeKey(purpose, subject), code, c.ttl)
		pipe.Del(ctx, attemptsKey(purpose, subject))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: Issue: %v", ErrStorage, err)
	}

	return code, nil
}

// Verify проверяет код. Верный код удаляется, повторно его использовать нельзя
func (c *Cache) Verify(ctx context.Context, purpose Purpose, subject, code string) error {
	aKey := attemptsKey(purpose, subject)
	cKey := codeKey(purpose, subject)

	attempts, err := c.rdb.Incr(ctx, aKey).Result()
	if err != nil {
		return fmt.Errorf("%w: Verify - incr attempts: %v", ErrStorage, err)
	}
	if attempts == 1 {
		c.rdb.Expire(ctx, aKey, c.ttl)
	}

	if attempts > c.maxAttempts {
		c.rdb.Del(ctx, cKey, aKey)
		return ErrTooManyAttempts
	}

	stored, err := c.rdb.Get(ctx, cKey).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCodeNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Verify - get code: %v", ErrStorage, err)
	}

	if stored != code {
		return ErrCodeMismatch
	}

	if err := c.rdb.Del(ctx, cKey, aKey).Err(); err != nil {
		return fmt.Errorf("%w: Verify - delete code: %v", ErrStorage, err)
	}
	return nil
}

// GenerateCode случайный шестизначный код
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("otp: generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func codeKey(purpose Purpose, subject string) string {
	return fmt.Sprintf("otp:%s:%s", purpose, subject)
}

func attemptsKey(purpose Purpose, subject string) string {
	return fmt.Sprintf("otp:%s:%s:attempts", purpose, subject)
}
