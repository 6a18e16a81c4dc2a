package models

import "time"

// RecurrenceType is the repetition rule of a recurring blocked slot.
type RecurrenceType string

const (
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceWeekly RecurrenceType = "weekly"
)

// RecurringPattern describes how a blocked-slot template repeats.
type RecurringPattern struct {
	Type RecurrenceType `bson:"type" json:"type"`                     // daily or weekly
	Days []int          `bson:"days,omitempty" json:"days,omitempty"` // Weekdays 0 (Sunday) .. 6 (Saturday); required and non-empty for weekly
}

// ContainsWeekday reports whether the pattern includes the given weekday.
func (p RecurringPattern) ContainsWeekday(wd time.Weekday) bool {
	for _, d := range p.Days {
		if d == int(wd) {
			return true
		}
	}
	return false
}

// BlockedSlot represents a time window that must never be double-booked.
// A non-recurring slot is a single concrete interval. A recurring slot is a
// template: StartTime and EndTime define the anchor time-of-day and duration,
// and occurrences are computed on demand, never persisted.
type BlockedSlot struct {
	ID               string            `bson:"id" json:"id"`                             // Unique identifier (UUID); for recurring slots this is the template id
	StartTime        time.Time         `bson:"start_time" json:"start_time"`             // Anchor start (absolute UTC instant)
	EndTime          time.Time         `bson:"end_time" json:"end_time"`                 // Anchor end; EndTime-StartTime is the occurrence duration
	Reason           string            `bson:"reason,omitempty" json:"reason,omitempty"` // Optional display reason (e.g., "lunch break")
	IsRecurring      bool              `bson:"is_recurring" json:"is_recurring"`         // True when this slot is a template
	RecurringPattern *RecurringPattern `bson:"recurring_pattern,omitempty" json:"recurring_pattern,omitempty"` // Required when IsRecurring
	CreatedAt        time.Time         `bson:"created_at" json:"created_at"`
}

// Duration returns the length of one occurrence of the slot.
func (b *BlockedSlot) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}
