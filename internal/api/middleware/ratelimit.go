package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/indocart/pos-payments/internal/api/metrics"
	"github.com/indocart/pos-payments/internal/core/domain"
)

// Throttle tier names, also used as metric labels.
const (
	TierGlobal    = "global"
	TierSensitive = "sensitive"
)

const limiterWindow = time.Minute

// RateLimit builds one throttle tier on echo's token-bucket limiter. quota is
// requests per 60-second window. The caller key is the authenticated subject
// when the tier runs after Authenticate, otherwise the client IP — so the
// global tier (registered before authentication) throttles per IP and the
// sensitive tier per identity.
func RateLimit(tier string, quota int) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(quota) / limiterWindow.Seconds()),
		Burst:     quota,
		ExpiresIn: 3 * limiterWindow,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if id, ok := Identity(c); ok {
				return tier + ":" + id.SubjectID, nil
			}
			return tier + ":" + c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return fmt.Errorf("%w: could not identify caller", domain.ErrRateLimited)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			metrics.RateLimitedTotal.WithLabelValues(tier).Inc()
			return fmt.Errorf("%w: too many requests", domain.ErrRateLimited)
		},
	})
}
