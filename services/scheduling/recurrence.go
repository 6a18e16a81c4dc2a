package scheduling

import (
	"time"

	"agenda/models"
)

// Occurrence is one concrete, date-bound materialization of a recurring
// blocked-slot template. Occurrences are pure derivations: expanding the same
// (template, window) pair twice yields identical results, and they are never
// individually stored, edited, or deleted.
type Occurrence struct {
	Key   models.OccurrenceKey
	Start time.Time
	End   time.Time
}

// ExpandTemplate turns a recurring blocked-slot template into concrete
// occurrences over the half-open window [windowStart, windowEnd). The window
// is day-granular: every calendar day from the day containing windowStart up
// to (excluding) windowEnd is a candidate, including the template's own
// anchor day when it matches the pattern. Each occurrence keeps the
// template's UTC time-of-day and duration, anchored to its own calendar day;
// a template spanning midnight does not carry over into the next day.
// Non-recurring slots and templates without a pattern expand to nothing.
func ExpandTemplate(t *models.BlockedSlot, windowStart, windowEnd time.Time) []Occurrence {
	if !t.IsRecurring || t.RecurringPattern == nil {
		return nil
	}
	if !windowEnd.After(windowStart) {
		return nil
	}

	anchor := t.StartTime.UTC()
	duration := t.Duration()
	timeOfDay := anchor.Sub(dayStart(anchor))

	var out []Occurrence
	for day := dayStart(windowStart.UTC()); day.Before(windowEnd.UTC()); day = day.AddDate(0, 0, 1) {
		switch t.RecurringPattern.Type {
		case models.RecurrenceDaily:
			// every day matches
		case models.RecurrenceWeekly:
			if !t.RecurringPattern.ContainsWeekday(day.Weekday()) {
				continue
			}
		default:
			continue
		}

		start := day.Add(timeOfDay)
		out = append(out, Occurrence{
			Key:   models.OccurrenceKey{TemplateID: t.ID, Date: day.Format(models.DateFormat)},
			Start: start,
			End:   start.Add(duration),
		})
	}
	return out
}

// dayStart truncates an instant to midnight UTC of its calendar day.
func dayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
