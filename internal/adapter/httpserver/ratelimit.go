package httpserver

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	apperrors "github.com/pscheid92/reviewpulse/internal/platform/errors"
)

const (
	msgRateLimited = "rate limit exceeded"

	// Buckets of clients that stopped sending reviews are dropped after this long.
	clientBucketTTL = 5 * time.Minute
)

// newRateLimiter throttles /api per client IP with a token bucket refilled at
// reviewsPerSecond. Rejected clients get 429 and a Retry-After of one refill.
func newRateLimiter(reviewsPerSecond float64, burst int) echo.MiddlewareFunc {
	buckets := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(reviewsPerSecond),
		Burst:     burst,
		ExpiresIn: clientBucketTTL,
	})
	retryAfter := strconv.Itoa(retryAfterSeconds(reviewsPerSecond))

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store:               buckets,
		IdentifierExtractor: clientIP,
		DenyHandler: func(c echo.Context, clientID string, _ error) error {
			rejected := apperrors.RateLimitedError(msgRateLimited).
				WithField("client_ip", clientID).
				WithField("path", c.Path())
			logError(c, rejected)

			c.Response().Header().Set("Retry-After", retryAfter)
			return c.JSON(http.StatusTooManyRequests, rejected.ToResponse())
		},
	})
}

func clientIP(c echo.Context) (string, error) {
	return c.RealIP(), nil
}

// retryAfterSeconds is the time for one token to refill, at least one second.
func retryAfterSeconds(reviewsPerSecond float64) int {
	if reviewsPerSecond <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/reviewsPerSecond)))
}
