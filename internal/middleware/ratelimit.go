package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/config"
)

// RateLimit returns an Echo middleware implementing a fixed-window request
// limiter keyed by client IP and route.  The window counter lives in redis
// so the limit holds across server instances.  With a nil client or the
// limiter disabled the middleware is a pass-through.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			window := time.Now().Unix() / int64(cfg.Window/time.Second)
			key := cfg.Prefix + ":" + c.RealIP() + ":" + c.Path() + ":" + strconv.FormatInt(window, 10)

			ctx := c.Request().Context()
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				// Redis trouble must not take the API down.
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if n > int64(cfg.Limit) {
				retry := strconv.Itoa(int(cfg.Window / time.Second))
				c.Response().Header().Set("Retry-After", retry)
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
