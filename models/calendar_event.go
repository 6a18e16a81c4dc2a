package models

import "time"

// CalendarEventType discriminates the two arms of the calendar event union.
type CalendarEventType string

const (
	EventTypeAppointment CalendarEventType = "appointment"
	EventTypeBlocked     CalendarEventType = "blocked"
)

// OccurrenceKey identifies one computed occurrence of a recurring blocked
// slot. It is a structured composite so a template id containing arbitrary
// characters can never collide with the date part.
type OccurrenceKey struct {
	TemplateID string `json:"template_id"` // Owning BlockedSlot template
	Date       string `json:"date"`        // Occurrence day in DateFormat (YYYY-MM-DD)
}

// CalendarEvent is one entry of the unified calendar feed. Events are
// ephemeral: they are derived per query by the projector and never persisted.
// Exactly one of Appointment / Blocked is set, according to Type.
type CalendarEvent struct {
	Type        CalendarEventType `json:"type"`
	ID          string            `json:"id"`                     // Entity id; for recurring blocked occurrences, the template id
	Occurrence  *OccurrenceKey    `json:"occurrence,omitempty"`   // Set only for recurring blocked occurrences
	Start       time.Time         `json:"start"`
	End         time.Time         `json:"end"`
	Title       string            `json:"title"`
	Color       string            `json:"color,omitempty"`
	Appointment *Appointment      `json:"appointment,omitempty"` // Payload when Type is appointment
	Blocked     *BlockedSlot      `json:"blocked,omitempty"`     // Payload when Type is blocked

	// Derived display flags, appointment events only.
	Status         AppointmentStatus `json:"status,omitempty"`
	Overdue        bool              `json:"overdue,omitempty"`         // Still scheduled/confirmed but its start has passed
	PendingPayment bool              `json:"pending_payment,omitempty"` // Has a financial record entry awaiting settlement
}

// SortKey returns the id used to break ties between events that start at the
// same instant, so feed ordering stays deterministic.
func (e *CalendarEvent) SortKey() string {
	if e.Occurrence != nil {
		return e.Occurrence.TemplateID + "@" + e.Occurrence.Date
	}
	return e.ID
}
