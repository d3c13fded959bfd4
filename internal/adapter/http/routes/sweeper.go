package routes

import (
	"context"
	"log"
	"time"
)

type overdueExpirer interface {
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}

// runExpirySweeper expires applications whose payment deadline has passed,
// once at startup and then every interval, until ctx is done.
func runExpirySweeper(ctx context.Context, expirer overdueExpirer, interval time.Duration) {
	if interval <= 0 {
		log.Printf("[pln][sweeper] disabled interval=%s", interval)
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		sweepOnce(ctx, expirer, time.Now().UTC())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func sweepOnce(ctx context.Context, expirer overdueExpirer, now time.Time) {
	n, err := expirer.ExpireOverdue(ctx, now)
	if err != nil {
		log.Printf("[pln][sweeper] expire overdue failed err=%v", err)
		return
	}
	if n > 0 {
		log.Printf("[pln][sweeper] expired applications count=%d", n)
	}
}
