package scheduling

import (
	"context"

	"agenda/models"
)

// CreateBlockedSlot validates and persists a one-off slot or recurring
// template. The anchor interval is conflict-checked against blocking
// appointments; future occurrences of a template are derived at read time and
// are allowed to land on existing appointments, which then surface as
// conflicts in the calendar.
func (s *DefaultSchedulingService) CreateBlockedSlot(ctx context.Context, in CreateBlockedSlotInput) (*models.BlockedSlot, error) {
	if err := validateBlockedSlot(in); err != nil {
		return nil, err
	}

	slot := &models.BlockedSlot{
		StartTime:        in.StartTime.UTC(),
		EndTime:          in.EndTime.UTC(),
		Reason:           in.Reason,
		IsRecurring:      in.IsRecurring,
		RecurringPattern: in.RecurringPattern,
		CreatedAt:        s.now(),
	}

	err := s.inTx(ctx, func(ctx context.Context) error {
		if err := s.ensureFree(ctx, Interval{Start: slot.StartTime, End: slot.EndTime}, ""); err != nil {
			return err
		}
		return s.BlockedSlots.Create(ctx, slot)
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx)
	return slot, nil
}

// DeleteBlockedSlot removes a slot or template. Deleting a template removes
// the whole series; occurrences are never stored, so they simply stop being
// derived.
func (s *DefaultSchedulingService) DeleteBlockedSlot(ctx context.Context, templateID string) error {
	if err := s.BlockedSlots.Delete(ctx, templateID); err != nil {
		return err
	}
	s.afterWrite(ctx)
	return nil
}
