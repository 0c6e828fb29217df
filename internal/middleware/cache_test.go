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

func newCachedEcho(mw echo.MiddlewareFunc, hits *int) *echo.Echo {
	e := echo.New()
	e.GET("/api/v1/portfolio", func(c echo.Context) error {
		*hits++
		return c.JSON(http.StatusOK, []map[string]string{{"src": "/portfolio/athletics/sample-1.jpg"}})
	}, mw)
	return e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestResponseCache_ServesRepeatFromRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	var hits int
	e := newCachedEcho(ResponseCache(rdb, time.Minute), &hits)

	first := doGet(e, "/api/v1/portfolio?category=athletics")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, hits)

	second := doGet(e, "/api/v1/portfolio?category=athletics")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, hits)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestResponseCache_DistinctQueriesCachedSeparately(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	var hits int
	e := newCachedEcho(ResponseCache(rdb, time.Minute), &hits)

	doGet(e, "/api/v1/portfolio?category=athletics")
	doGet(e, "/api/v1/portfolio?category=portraits")

	assert.Equal(t, 2, hits)
}

func TestResponseCache_ExpiresAfterTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	var hits int
	e := newCachedEcho(ResponseCache(rdb, time.Second), &hits)

	doGet(e, "/api/v1/portfolio?category=athletics")
	mr.FastForward(2 * time.Second)
	doGet(e, "/api/v1/portfolio?category=athletics")

	assert.Equal(t, 2, hits)
}

func TestResponseCache_NilClientDisables(t *testing.T) {
	var hits int
	e := newCachedEcho(ResponseCache(nil, time.Minute), &hits)

	doGet(e, "/api/v1/portfolio?category=athletics")
	doGet(e, "/api/v1/portfolio?category=athletics")

	assert.Equal(t, 2, hits)
}
