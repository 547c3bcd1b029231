package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Token bucket в Redis: состояние корзины хранится в хеше, пересчет атомарный
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

local state = redis.call("HMGET", key, "tokens", "ts")
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
	tokens = burst
	ts = now
end

local elapsed = math.max(0, now - ts) / 1000
tokens = math.min(burst, tokens + elapsed * rate)

local allowed = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
end

redis.call("HSET", key, "tokens", tostring(tokens), "ts", tostring(now))
redis.call("PEXPIRE", key, math.ceil(burst / rate * 1000) + 1000)
return allowed
`)

// RateLimitLogger интерфейс для логирования
type RateLimitLogger interface {
	Warn(format string, v ...interface{})
}

// RateLimiter ограничивает частоту запросов с одного адреса
type RateLimiter struct {
	rdb       redis.Scripter
	perSecond float64
	burst     int
	prefix    string
	now       func() time.Time
	log       RateLimitLogger
}

// NewRateLimiter создает ограничитель: perMinute запросов в минуту с запасом burst
func NewRateLimiter(rdb redis.Scripter, perMinute, burst int, log RateLimitLogger) *RateLimiter {
	return &RateLimiter{
		rdb:       rdb,
		perSecond: float64(perMinute) / 60,
		burst:     burst,
		prefix:    "ratelimit:",
		now:       time.Now,
		log:       log,
	}
}

// Allow забирает один токен из корзины key
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	allowed, err := tokenBucketScript.Run(ctx, l.rdb,
		[]string{l.prefix + key},
		l.perSecond, l.burst, l.now().UnixMilli(),
	).Int()
	if err != nil {
		return false, err
	}
	return allowed == 1, nil
}

// Middleware отвечает 429, когда корзина пуста.
// При недоступности Redis запрос пропускается
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, err := l.Allow(r.Context(), clientIP(r))
		if err != nil {
			l.log.Warn("Rate limiter unavailable, request allowed: %v", err)
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
