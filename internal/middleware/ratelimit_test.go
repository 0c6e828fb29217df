package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(mw echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.POST("/api/v1/bookings", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"id": "b-1"})
	}, mw)
	return e
}

func doPost(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
	req.RemoteAddr = ip + ":4000"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BlocksAfterCapacity(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := newTestEcho(RateLimit(rdb, 2, time.Minute))

	assert.Equal(t, http.StatusCreated, doPost(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusCreated, doPost(e, "10.0.0.1").Code)

	rec := doPost(e, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimit_KeyedByClientIP(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := newTestEcho(RateLimit(rdb, 1, time.Minute))

	assert.Equal(t, http.StatusCreated, doPost(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doPost(e, "10.0.0.1").Code)
	// A different client is unaffected
	assert.Equal(t, http.StatusCreated, doPost(e, "10.0.0.2").Code)
}

func TestRateLimit_WindowExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := newTestEcho(RateLimit(rdb, 1, time.Minute))

	assert.Equal(t, http.StatusCreated, doPost(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doPost(e, "10.0.0.1").Code)

	mr.FastForward(2 * time.Minute)

	assert.Equal(t, http.StatusCreated, doPost(e, "10.0.0.1").Code)
}

func TestRateLimit_NilClientDisables(t *testing.T) {
	e := newTestEcho(RateLimit(nil, 1, time.Minute))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusCreated, doPost(e, "10.0.0.1").Code)
	}
}
