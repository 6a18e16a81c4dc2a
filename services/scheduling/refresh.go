package scheduling

import (
	"context"
	"time"

	"go.uber.org/zap"

	"agenda/models"
	"agenda/utils"
)

// RefreshLoop periodically re-fetches one calendar window and hands the
// result to the sink. Ticks never overlap: each fetch runs to completion
// before the next tick is considered, and a failed fetch is simply retried on
// the following tick. The loop stops when ctx is cancelled.
func (s *DefaultSchedulingService) RefreshLoop(ctx context.Context, q CalendarQuery, interval time.Duration, sink func([]models.CalendarEvent)) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			events, err := s.GetCalendarEvents(ctx, q)
			if err != nil {
				utils.GetLogger().Warn("calendar refresh tick failed", zap.Error(err))
				continue
			}
			sink(events)
		}
	}
}
