package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimit allows capacity requests per client IP per route within each
// window, counted in Redis so the limit holds across instances. Requests are
// let through when Redis misbehaves; better unthrottled than unavailable.
// A nil client disables the middleware.
func RateLimit(rdb *redis.Client, capacity int, window time.Duration) echo.MiddlewareFunc {
	if rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			key := fmt.Sprintf("rl:%s:%s %s", ip, c.Request().Method, c.Path())

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, window)
			}

			remaining := int64(capacity) - n
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(capacity))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(capacity) {
				retry, err := rdb.TTL(ctx, key).Result()
				if err != nil || retry < 0 {
					retry = window
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry/time.Second)))
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"message":     "rate limit exceeded",
					"retry_after": int(retry / time.Second),
				})
			}

			return next(c)
		}
	}
}
