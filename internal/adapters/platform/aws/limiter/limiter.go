package limiter

import (
	"context"

	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"golang.org/x/time/rate"
)

const (
	DefaultRateLimitRPS = 5
	minRateLimitRPS     = 1
	maxRateLimitRPS     = 100
)

// DefaultRateLimiter paces mutating AWS calls. The zero value is unlimited.
type DefaultRateLimiter struct {
	limiter *rate.Limiter
}

// New returns a limiter allowing rps calls per second with a burst of one,
// so tag calls are spread evenly. Out-of-range values fall back to the
// default.
func New(rps int, logger ports.Logger) *DefaultRateLimiter {
	limitValue := DefaultRateLimitRPS
	if rps >= minRateLimitRPS && rps <= maxRateLimitRPS {
		limitValue = rps
	} else if rps != 0 {
		logger.Warnf(context.Background(), "Invalid AWS API RPS configured (%d), using default %d RPS. Valid range: %d-%d.", rps, DefaultRateLimitRPS, minRateLimitRPS, maxRateLimitRPS)
	}
	logger.Debugf(context.Background(), "Initialized AWS API rate limiter: %d RPS", limitValue)
	return &DefaultRateLimiter{limiter: rate.NewLimiter(rate.Limit(limitValue), 1)}
}

func (l *DefaultRateLimiter) Wait(ctx context.Context, logger ports.Logger) error {
	if l == nil || l.limiter == nil {
		return nil
	}
	if err := l.limiter.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			logger.Warnf(ctx, "Error waiting for AWS API rate limiter: %v", err)
		}
		return err
	}
	return nil
}
