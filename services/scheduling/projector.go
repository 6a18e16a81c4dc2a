package scheduling

import (
	"sort"
	"time"

	"agenda/models"
)

// ProjectionOptions filter and parameterize one calendar projection.
// Status and service filters never apply to blocked-type events.
type ProjectionOptions struct {
	Types     []models.CalendarEventType  // Empty means both types
	Statuses  []models.AppointmentStatus  // Appointment events only; empty means all
	ServiceID string                      // Appointment events only; empty means all
	Now       time.Time                   // Reference instant for the overdue flag
}

func (o ProjectionOptions) wantsType(t models.CalendarEventType) bool {
	if len(o.Types) == 0 {
		return true
	}
	for _, w := range o.Types {
		if w == t {
			return true
		}
	}
	return false
}

func (o ProjectionOptions) wantsStatus(s models.AppointmentStatus) bool {
	if len(o.Statuses) == 0 {
		return true
	}
	for _, w := range o.Statuses {
		if w == s {
			return true
		}
	}
	return false
}

// BuildCalendar merges appointments and blocked-slot occurrences into one
// ordered calendar feed for the half-open window [windowStart, windowEnd).
// Recurring templates are expanded over the window; non-recurring slots are
// kept when they intersect it. Events are sorted ascending by start time,
// with ties broken by id so rendering is deterministic.
func BuildCalendar(windowStart, windowEnd time.Time, appts []models.Appointment, slots []models.BlockedSlot, serviceColors map[string]string, opts ProjectionOptions) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(appts)+len(slots))

	if opts.wantsType(models.EventTypeAppointment) {
		for i := range appts {
			a := appts[i]
			if !opts.wantsStatus(a.Status) {
				continue
			}
			if opts.ServiceID != "" && a.ServiceID != opts.ServiceID {
				continue
			}
			events = append(events, models.CalendarEvent{
				Type:           models.EventTypeAppointment,
				ID:             a.ID,
				Start:          a.StartTime,
				End:            a.EndTime,
				Title:          a.Title,
				Color:          serviceColors[a.ServiceID],
				Appointment:    &a,
				Status:         a.Status,
				Overdue:        a.IsBlocking() && a.StartTime.Before(opts.Now),
				PendingPayment: a.HasPendingPayment(),
			})
		}
	}

	if opts.wantsType(models.EventTypeBlocked) {
		window := Interval{Start: windowStart, End: windowEnd}
		for i := range slots {
			s := slots[i]
			if !s.IsRecurring {
				if !window.Overlaps(Interval{Start: s.StartTime, End: s.EndTime}) {
					continue
				}
				events = append(events, models.CalendarEvent{
					Type:    models.EventTypeBlocked,
					ID:      s.ID,
					Start:   s.StartTime,
					End:     s.EndTime,
					Title:   blockedTitle(&s),
					Blocked: &s,
				})
				continue
			}
			for _, occ := range ExpandTemplate(&s, windowStart, windowEnd) {
				key := occ.Key
				events = append(events, models.CalendarEvent{
					Type:       models.EventTypeBlocked,
					ID:         s.ID,
					Occurrence: &key,
					Start:      occ.Start,
					End:        occ.End,
					Title:      blockedTitle(&s),
					Blocked:    &s,
				})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		return events[i].SortKey() < events[j].SortKey()
	})

	return events
}

func blockedTitle(s *models.BlockedSlot) string {
	if s.Reason != "" {
		return s.Reason
	}
	return "Blocked"
}

// MergeAppointmentFeeds de-duplicates appointments fetched from more than one
// upstream source (e.g., an active feed and a historical feed returning
// overlapping sets). Records from the active feed win on id collisions, since
// their status is assumed fresher.
func MergeAppointmentFeeds(active, historical []models.Appointment) []models.Appointment {
	seen := make(map[string]struct{}, len(active))
	out := make([]models.Appointment, 0, len(active)+len(historical))
	for _, a := range active {
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	for _, h := range historical {
		if _, ok := seen[h.ID]; ok {
			continue
		}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
