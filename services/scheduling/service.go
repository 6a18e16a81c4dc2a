package scheduling

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"agenda/models"
	"agenda/utils"
)

// CreateAppointment validates the input, checks the candidate interval
// against every blocking entity, and persists the appointment. The conflict
// check and the insert run in one transaction. New appointments always start
// in the scheduled state.
func (s *DefaultSchedulingService) CreateAppointment(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error) {
	if strings.TrimSpace(in.ContactID) == "" {
		return nil, validationError("contact_id", "contact_id is required")
	}

	title := strings.TrimSpace(in.Title)
	priceCents := in.PriceCents
	if in.ServiceID != "" {
		svc, err := s.Services.GetByID(ctx, in.ServiceID)
		if err != nil {
			return nil, validationError("service_id", "unknown service")
		}
		if title == "" {
			title = svc.Name
		}
		if priceCents == 0 {
			priceCents = svc.DefaultPriceCents
		}
	}

	if err := validateAppointmentTimes(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}
	if err := validateAppointmentFields(title, in.Notes, priceCents); err != nil {
		return nil, err
	}

	now := s.now()
	appt := &models.Appointment{
		ContactID:  in.ContactID,
		ServiceID:  in.ServiceID,
		Title:      title,
		StartTime:  in.StartTime.UTC(),
		EndTime:    in.EndTime.UTC(),
		PriceCents: priceCents,
		Notes:      in.Notes,
		Status:     models.StatusScheduled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.inTx(ctx, func(ctx context.Context) error {
		if err := s.ensureFree(ctx, Interval{Start: appt.StartTime, End: appt.EndTime}, ""); err != nil {
			return err
		}
		return s.Appointments.Create(ctx, appt)
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx)
	s.scheduleReminder(ctx, appt)
	return appt, nil
}

// UpdateAppointment applies a partial full-field edit. Edits are legal only
// while the appointment is scheduled or confirmed; a change of times is
// re-checked for conflicts, ignoring the appointment itself.
func (s *DefaultSchedulingService) UpdateAppointment(ctx context.Context, id string, in UpdateAppointmentInput) (*models.Appointment, error) {
	var out *models.Appointment
	err := s.inTx(ctx, func(ctx context.Context) error {
		appt, err := s.Appointments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !appt.CanBeEdited() {
			return &InvalidStateTransitionError{Op: "edit", From: appt.Status}
		}

		if in.ServiceID != nil {
			if *in.ServiceID != "" {
				if _, err := s.Services.GetByID(ctx, *in.ServiceID); err != nil {
					return validationError("service_id", "unknown service")
				}
			}
			appt.ServiceID = *in.ServiceID
		}
		if in.Title != nil {
			appt.Title = strings.TrimSpace(*in.Title)
		}
		if in.StartTime != nil {
			appt.StartTime = in.StartTime.UTC()
		}
		if in.EndTime != nil {
			appt.EndTime = in.EndTime.UTC()
		}
		if in.PriceCents != nil {
			appt.PriceCents = *in.PriceCents
		}
		if in.Notes != nil {
			appt.Notes = *in.Notes
		}

		if err := validateAppointmentTimes(appt.StartTime, appt.EndTime); err != nil {
			return err
		}
		if err := validateAppointmentFields(appt.Title, appt.Notes, appt.PriceCents); err != nil {
			return err
		}
		if err := s.ensureFree(ctx, Interval{Start: appt.StartTime, End: appt.EndTime}, appt.ID); err != nil {
			return err
		}

		appt.UpdatedAt = s.now()
		if err := s.Appointments.Update(ctx, appt); err != nil {
			return err
		}
		out = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx)
	s.scheduleReminder(ctx, out)
	return out, nil
}

// UpdateAppointmentStatus moves an appointment through the lifecycle machine.
// Illegal moves fail with InvalidStateTransitionError; nothing else ever
// changes a status.
func (s *DefaultSchedulingService) UpdateAppointmentStatus(ctx context.Context, id string, target models.AppointmentStatus, reason string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Transition(appt, target, reason, s.now()); err != nil {
		return nil, err
	}
	if err := s.Appointments.Update(ctx, appt); err != nil {
		return nil, err
	}

	s.afterWrite(ctx)
	if appt.IsTerminal() {
		s.cancelReminder(ctx, appt.ID)
	}
	return appt, nil
}

// DeleteAppointment removes an appointment. Completed appointments are part
// of the permanent record and can never be hard-deleted.
func (s *DefaultSchedulingService) DeleteAppointment(ctx context.Context, id string) error {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !appt.CanBeDeleted() {
		return &InvalidStateTransitionError{Op: "delete", From: appt.Status}
	}
	if err := s.Appointments.Delete(ctx, id); err != nil {
		return err
	}

	s.afterWrite(ctx)
	s.cancelReminder(ctx, id)
	return nil
}

// ensureFree fails with ConflictError if the candidate interval overlaps any
// blocking entity. ignoreID excludes the entity being edited.
func (s *DefaultSchedulingService) ensureFree(ctx context.Context, candidate Interval, ignoreID string) error {
	appts, err := s.Appointments.ListBlockingWindow(ctx, candidate.Start, candidate.End)
	if err != nil {
		return err
	}
	slots, err := s.BlockedSlots.ListForWindow(ctx, candidate.Start, candidate.End)
	if err != nil {
		return err
	}
	if conflicts := FindConflicts(candidate, ignoreID, appts, slots); len(conflicts) > 0 {
		return &ConflictError{Conflicts: conflicts}
	}
	return nil
}

// afterWrite drops cached calendar windows; callers re-query the projector
// for any affected window after a successful mutation.
func (s *DefaultSchedulingService) afterWrite(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		utils.GetLogger().Warn("calendar cache invalidation failed", zap.Error(err))
	}
}

func (s *DefaultSchedulingService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if s.Reminders == nil || appt == nil {
		return
	}
	if err := s.Reminders.ScheduleAppointmentReminder(ctx, appt); err != nil {
		utils.GetLogger().Warn("failed to schedule appointment reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

func (s *DefaultSchedulingService) cancelReminder(ctx context.Context, appointmentID string) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.CancelAppointmentReminder(ctx, appointmentID); err != nil {
		utils.GetLogger().Warn("failed to cancel appointment reminder",
			zap.String("appointmentID", appointmentID), zap.Error(err))
	}
}
