package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/utils"
)

// KeyRateLimit is the Redis key format for rate limit counters
const KeyRateLimit = "rate:limit:%s:%s:%s" // Format: rate:limit:{scope}:{route}:{identifier}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Scope of the limit
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
	Logger      *logger.ZapLogger
}

// RateLimiterMiddleware creates a fixed window rate limiter backed by Redis.
// Requests are let through when Redis cannot be reached.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	l := config.Logger
	if l == nil {
		l = logger.NewNopLogger()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.RedisClient == nil || config.Limit <= 0 {
				return next(c)
			}

			identifier := c.RealIP()
			if uid := UserID(c); uid != "" {
				identifier = uid
			}

			key := fmt.Sprintf(KeyRateLimit, config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			n, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				l.Warn("Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.ErrorField(err))
				return next(c)
			}
			if n == 1 {
				config.RedisClient.Expire(ctx, key, config.Period)
			}

			count := int(n)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				ttl := config.RedisClient.TTL(ctx, key).Val()
				if ttl < 0 {
					ttl = config.Period
				}
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client, l *logger.ZapLogger) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "ip",
		Limit:       limit,
		Period:      period,
		Logger:      l,
	})
}

// UserRateLimiter creates a rate limiter keyed by the verified user, falling
// back to the client IP
func UserRateLimiter(limit int, period time.Duration, redisClient *redis.Client, l *logger.ZapLogger) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "user",
		Limit:       limit,
		Period:      period,
		Logger:      l,
	})
}
