package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// bodyCapture tees the response body so a successful render can be stored.
type bodyCapture struct {
	http.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache serves repeated GETs of the same route+query from Redis for
// ttl. Only 200 JSON responses are stored. A nil client disables the
// middleware entirely.
func ResponseCache(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	if rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(c)

			if data, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, data)
			}

			capture := &bodyCapture{ResponseWriter: c.Response().Writer}
			c.Response().Writer = capture

			if err := next(c); err != nil {
				return err
			}

			if c.Response().Status == http.StatusOK {
				rdb.Set(ctx, key, capture.buf.Bytes(), ttl)
			}
			return nil
		}
	}
}

func cacheKey(c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("cache:%x", sum)
}
