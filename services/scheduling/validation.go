package scheduling

import (
	"strings"
	"time"

	"agenda/models"
)

func validateAppointmentTimes(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return validationError("start_time", "start_time and end_time are required")
	}
	if !end.After(start) {
		return validationError("end_time", "end_time must be after start_time")
	}
	minutes := end.Sub(start) / time.Minute
	if minutes < models.MinDurationMinutes || minutes > models.MaxDurationMinutes {
		return validationError("end_time", "duration must be between 5 and 480 minutes")
	}
	return nil
}

func validateAppointmentFields(title, notes string, priceCents int64) error {
	if strings.TrimSpace(title) == "" {
		return validationError("title", "title is required")
	}
	if len(title) > models.MaxTitleLength {
		return validationError("title", "title too long")
	}
	if len(notes) > models.MaxNotesLength {
		return validationError("notes", "notes must be at most 2000 characters")
	}
	if priceCents < 0 {
		return validationError("price_cents", "price must not be negative")
	}
	return nil
}

func validateBlockedSlot(in CreateBlockedSlotInput) error {
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return validationError("start_time", "start_time and end_time are required")
	}
	if !in.EndTime.After(in.StartTime) {
		return validationError("end_time", "end_time must be after start_time")
	}
	if len(in.Reason) > models.MaxReasonLength {
		return validationError("reason", "reason too long")
	}
	if !in.IsRecurring {
		if in.RecurringPattern != nil {
			return validationError("recurring_pattern", "recurring_pattern requires is_recurring")
		}
		return nil
	}

	p := in.RecurringPattern
	if p == nil {
		return validationError("recurring_pattern", "recurring_pattern is required for recurring slots")
	}
	switch p.Type {
	case models.RecurrenceDaily:
		if len(p.Days) != 0 {
			return validationError("recurring_pattern.days", "days only apply to weekly patterns")
		}
	case models.RecurrenceWeekly:
		if len(p.Days) == 0 {
			return validationError("recurring_pattern.days", "weekly patterns require at least one weekday")
		}
		seen := map[int]struct{}{}
		for _, d := range p.Days {
			if d < 0 || d > 6 {
				return validationError("recurring_pattern.days", "weekdays must be between 0 and 6")
			}
			if _, ok := seen[d]; ok {
				return validationError("recurring_pattern.days", "duplicate weekday")
			}
			seen[d] = struct{}{}
		}
	default:
		return validationError("recurring_pattern.type", "type must be daily or weekly")
	}

	// Occurrences are anchored to a single calendar day; a window crossing
	// midnight must be modeled as two blocked slots.
	if !dayStart(in.StartTime).Equal(dayStart(in.EndTime)) && !in.EndTime.Equal(dayStart(in.EndTime)) {
		return validationError("end_time", "a recurring blocked slot must not span midnight")
	}
	return nil
}

func validateService(name string, durationMinutes int, priceCents int64) error {
	if strings.TrimSpace(name) == "" {
		return validationError("name", "name is required")
	}
	if len(name) > models.MaxTitleLength {
		return validationError("name", "name too long")
	}
	if durationMinutes < models.MinDurationMinutes || durationMinutes > models.MaxDurationMinutes {
		return validationError("default_duration_minutes", "duration must be between 5 and 480 minutes")
	}
	if priceCents < 0 {
		return validationError("default_price_cents", "price must not be negative")
	}
	return nil
}

func validateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return validationError("start_date", "start_date and end_date are required")
	}
	if !end.After(start) {
		return validationError("end_date", "end_date must be after start_date")
	}
	return nil
}
