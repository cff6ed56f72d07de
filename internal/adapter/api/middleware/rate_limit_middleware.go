package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"acredge/internal/infrastructure/ratelimit"
	"acredge/pkg/errors"
	"acredge/pkg/logger"
	"acredge/pkg/response"
)

// RateLimit limits requests per client IP.
func RateLimit(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, wait := limiter.Allow(ip)
			if !allowed {
				logger.Warn("Rate limit exceeded for %s on %s", ip, c.Path())
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				return response.Error(c, errors.TooManyRequests("Too many requests, please try again later"))
			}

			return next(c)
		}
	}
}
