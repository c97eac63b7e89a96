package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitedEcho(client *redis.Client, limit int) *echo.Echo {
	e := echo.New()
	e.POST("/api/auth/register", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, IPRateLimiter(limit, time.Minute, client, nil))
	return e
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	e := newLimitedEcho(client, 2)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	keys := mr.Keys()
	if assert.Len(t, keys, 1) {
		assert.Equal(t, time.Minute, mr.TTL(keys[0]))
	}

	mr.FastForward(time.Minute)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRateLimiterMiddleware_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	e := newLimitedEcho(client, 1)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}

func TestRateLimiterMiddleware_Disabled(t *testing.T) {
	e := newLimitedEcho(nil, 1)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}
