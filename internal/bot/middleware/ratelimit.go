package middleware

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"
)

const (
	perUserInterval = 500 * time.Millisecond
	perUserBurst    = 5
)

// RateLimit keeps one limiter per chat so a single user cannot drain the
// third-party search quota for everyone.
func RateLimit(logger *zap.Logger) tele.MiddlewareFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[int64]*rate.Limiter)
	)

	limiterFor := func(userID int64) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		l, ok := limiters[userID]
		if !ok {
			l = rate.NewLimiter(rate.Every(perUserInterval), perUserBurst)
			limiters[userID] = l
		}
		return l
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil {
				return next(c)
			}

			if !limiterFor(user.ID).Allow() {
				logger.Warn("rate limit exceeded", zap.Int64("user_id", user.ID))
				return c.Reply("Too many requests. Please slow down a little.")
			}

			return next(c)
		}
	}
}
