package app

import (
	"context"
	"time"

	"ecomm-gateway/internal/domain/payment"
	"ecomm-gateway/pkg/logger"
)

// closeDayScheduler triggers the processor's business-day close on a
// fixed interval, replacing the cron job the processor contract assumes.
// The gated /ops/close-day endpoint remains available either way.
func closeDayScheduler(ctx context.Context, l logger.Interface, service *payment.Service, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.Info("close-day scheduler started: interval=%s", interval)

	for {
		select {
		case <-ctx.Done():
			l.Info("close-day scheduler stopped")
			return nil
		case <-ticker.C:
			if _, err := service.CloseBusinessDay(ctx); err != nil {
				// Logged by the service; the next tick tries again.
				continue
			}
		}
	}
}
