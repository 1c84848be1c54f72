package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/deliveryeta/internal/pkg/constants"
	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/piresc/deliveryeta/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a fixed-window rate limiter backed by Redis.
// Redis errors let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), c.RealIP())

			// SET NX EX and INCR run in one MULTI so a window key never lives without a TTL
			var incr *redis.IntCmd
			_, err := config.RedisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.SetNX(ctx, key, 0, config.Period)
				incr = pipe.Incr(ctx, key)
				return nil
			})
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}
			count := incr.Val()

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if int(count) > config.Limit {
				reset := config.RedisClient.TTL(ctx, key).Val()
				if reset <= 0 {
					reset = config.Period
				}
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(reset).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(reset.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(config.Limit-int(count)))
			return next(c)
		}
	}
}

// IPRateLimiter creates a per-client-IP rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         constants.KeyRateLimitIP,
		Limit:       limit,
		Period:      period,
	})
}
