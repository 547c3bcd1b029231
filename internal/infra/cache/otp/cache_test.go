package otp

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, maxAttempts int) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCache(rdb, 10*time.Minute, maxAttempts), mr
}

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Len(t, code, CodeLength)
		assert.NotEqual(t, byte('0'), code[0])
	}
}

func TestCache_IssueAndVerify(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, 5)

	code, err := cache.Issue(ctx, PurposeRegister, "9876543210")
	require.NoError(t, err)

	require.NoError(t, cache.Verify(ctx, PurposeRegister, "9876543210", code))

	// одноразовый
	assert.ErrorIs(t, cache.Verify(ctx, PurposeRegister, "9876543210", code), ErrCodeNotFound)
}

func TestCache_PurposesAreSeparate(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, 5)

	code, err := cache.Issue(ctx, PurposeLogin, "9876543210")
	require.NoError(t, err)

	assert.ErrorIs(t, cache.Verify(ctx, PurposeRegister, "9876543210", code), ErrCodeNotFound)
}

func TestCache_Expired(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, 5)

	code, err := cache.Issue(ctx, PurposeLogin, "9876543210")
	require.NoError(t, err)

	mr.FastForward(11 * time.Minute)

	assert.ErrorIs(t, cache.Verify(ctx, PurposeLogin, "9876543210", code), ErrCodeNotFound)
}

func TestCache_AttemptLimit(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, 2)

	code, err := cache.Issue(ctx, PurposeLogin, "user@example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, cache.Verify(ctx, PurposeLogin, "user@example.com", "000000"), ErrCodeMismatch)
	assert.ErrorIs(t, cache.Verify(ctx, PurposeLogin, "user@example.com", "000001"), ErrCodeMismatch)
	assert.ErrorIs(t, cache.Verify(ctx, PurposeLogin, "user@example.com", code), ErrTooManyAttempts)

	// после сброса нужен новый код
	assert.ErrorIs(t, cache.Verify(ctx, PurposeLogin, "user@example.com", code), ErrCodeNotFound)
}

func TestCache_ReissueResetsAttempts(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, 1)

	_, err := cache.Issue(ctx, PurposeLogin, "9876543210")
	require.NoError(t, err)
	assert.ErrorIs(t, cache.Verify(ctx, PurposeLogin, "9876543210", "000000"), ErrCodeMismatch)

	code, err := cache.Issue(ctx, PurposeLogin, "9876543210")
	require.NoError(t, err)
	assert.NoError(t, cache.Verify(ctx, PurposeLogin, "9876543210", code))
}
