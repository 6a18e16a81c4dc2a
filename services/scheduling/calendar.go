package scheduling

import (
	"context"

	"go.uber.org/zap"

	"agenda/models"
	"agenda/utils"
)

// GetCalendarEvents builds the merged calendar feed for one window. The feed
// is served from the cache when a fresh copy exists; otherwise it is projected
// from the stores and cached for the next reader.
func (s *DefaultSchedulingService) GetCalendarEvents(ctx context.Context, q CalendarQuery) ([]models.CalendarEvent, error) {
	if err := validateWindow(q.StartDate, q.EndDate); err != nil {
		return nil, err
	}
	windowStart := q.StartDate.UTC()
	windowEnd := q.EndDate.UTC()

	if s.Cache != nil {
		events, ok, err := s.Cache.Get(ctx, q)
		if err != nil {
			utils.GetLogger().Warn("calendar cache read failed", zap.Error(err))
		} else if ok {
			return events, nil
		}
	}

	appts, err := s.Appointments.ListWindow(ctx, q.ContactID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	slots, err := s.BlockedSlots.ListForWindow(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	colors, err := s.serviceColors(ctx)
	if err != nil {
		return nil, err
	}

	events := BuildCalendar(windowStart, windowEnd, appts, slots, colors, ProjectionOptions{
		Types:     q.Types,
		Statuses:  q.Statuses,
		ServiceID: q.ServiceID,
		Now:       s.now(),
	})

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, q, events); err != nil {
			utils.GetLogger().Warn("calendar cache write failed", zap.Error(err))
		}
	}
	return events, nil
}

// serviceColors maps service id to display color for appointment events.
func (s *DefaultSchedulingService) serviceColors(ctx context.Context) (map[string]string, error) {
	services, err := s.Services.List(ctx, false)
	if err != nil {
		return nil, err
	}
	colors := make(map[string]string, len(services))
	for _, svc := range services {
		colors[svc.ID] = svc.Color
	}
	return colors, nil
}
