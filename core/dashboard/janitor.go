package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/campusunite/backend/core"
)

// EvictIdleSessions ends, every `every`, the sessions not seen for `idle`.
// It blocks until ctx is done. A non-positive `idle` or `every` disables eviction.
func EvictIdleSessions(ctx context.Context, svc Service, logger core.Logger, idle, every time.Duration) {
	if idle <= 0 || every <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.EvictIdle(ctx, nowFunc().UTC().Add(-idle)); err != nil {
				logger.Error(fmt.Sprintf("evicting idle sessions: %v", err), err)
			}
		}
	}
}
