package scheduling

import (
	"fmt"
	"strings"
	"time"

	"agenda/models"
)

// ValidationError signals malformed input: a bad duration, end before start,
// an empty required field. It is detected locally, before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictKind distinguishes what kind of entity blocks a candidate interval.
type ConflictKind string

const (
	ConflictAppointment ConflictKind = "appointment"
	ConflictBlockedSlot ConflictKind = "blocked"
)

// Conflict names one blocking entity so the caller can present a precise
// message.
type Conflict struct {
	Kind       ConflictKind          `json:"kind"`
	ID         string                `json:"id"` // Entity id; template id for recurring occurrences
	Occurrence *models.OccurrenceKey `json:"occurrence,omitempty"`
	Start      time.Time             `json:"start"`
	End        time.Time             `json:"end"`
}

// ConflictError reports a temporal overlap against one or more blocking
// entities.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s %s [%s, %s)", c.Kind, c.ID,
			c.Start.Format(time.RFC3339), c.End.Format(time.RFC3339)))
	}
	return "time conflict with: " + strings.Join(parts, ", ")
}

// InvalidStateTransitionError reports an illegal lifecycle move, naming the
// current and attempted target state. Guarded operations that are not status
// moves (edit, delete) set Op instead of To.
type InvalidStateTransitionError struct {
	Op   string
	From models.AppointmentStatus
	To   models.AppointmentStatus
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s not allowed while status is %q", e.Op, e.From)
	}
	return fmt.Sprintf("invalid state transition from %q to %q", e.From, e.To)
}
