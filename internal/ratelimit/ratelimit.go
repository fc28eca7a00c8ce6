package ratelimit

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter enforces a minimum spacing between outbound calls to a rate-limited
// source. One instance is shared process-wide per source; admission is FIFO.
type Limiter struct {
	limiter *rate.Limiter
	logger  *zap.Logger
}

func New(minInterval time.Duration, logger *zap.Logger) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
		logger:  logger,
	}
}

// WaitForSlot suspends the caller until at least the minimum interval has
// elapsed since the previously granted slot. It only fails when the context
// is cancelled; rate limiting itself never rejects.
func (l *Limiter) WaitForSlot(ctx context.Context) error {
	start := time.Now()
	if err := l.limiter.Wait(ctx); err != nil {
		return err
	}

	if waited := time.Since(start); waited > 50*time.Millisecond {
		l.logger.Debug("rate limiter delayed call", zap.Duration("waited", waited))
	}

	return nil
}
