package scheduling

import (
	"time"

	"agenda/models"
)

// legalTransitions is the full appointment lifecycle: scheduled is the
// initial state, completed/cancelled/no_show are terminal. Time passing never
// triggers a transition; "overdue" is a derived display flag computed by the
// projector.
var legalTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusScheduled: {models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled, models.StatusNoShow},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled, models.StatusNoShow},
	models.StatusCompleted: {},
	models.StatusCancelled: {},
	models.StatusNoShow:    {},
}

// CanTransition reports whether moving an appointment from one status to
// another is legal.
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, t := range legalTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Transition applies a status change to the appointment, storing the
// cancellation reason when moving to cancelled. It fails with
// InvalidStateTransitionError for any move outside the lifecycle table.
func Transition(appt *models.Appointment, target models.AppointmentStatus, reason string, now time.Time) error {
	if !CanTransition(appt.Status, target) {
		return &InvalidStateTransitionError{From: appt.Status, To: target}
	}
	appt.Status = target
	if target == models.StatusCancelled && reason != "" {
		appt.CancellationReason = reason
	}
	appt.UpdatedAt = now
	return nil
}
