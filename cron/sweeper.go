package cron

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"stayhub/metrics"
	"stayhub/services/checkout"
)

// StartSessionSweeper runs a background job that tears down idle checkout
// sessions, stopping their timers and cancelling outstanding settlements.
// Returns the scheduler so the caller can stop it on shutdown.
func StartSessionSweeper(store *checkout.SessionStore, logger *zap.Logger) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@every 1m", func() {
		if n := store.SweepIdle(time.Now()); n > 0 {
			metrics.SessionsSwept.Add(float64(n))
			logger.Info("swept idle checkout sessions",
				zap.Int("count", n),
				zap.Int("remaining", store.Len()))
		}
	})
	if err != nil {
		logger.Fatal("failed to schedule session sweeper", zap.Error(err))
	}
	c.Start()
	return c
}
