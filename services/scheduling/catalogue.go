package scheduling

import (
	"context"
	"strings"

	"agenda/models"
)

// GetServices lists catalogue services, optionally filtered to active ones.
func (s *DefaultSchedulingService) GetServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	return s.Services.List(ctx, activeOnly)
}

// CreateService adds a catalogue service. New services start active.
func (s *DefaultSchedulingService) CreateService(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	if err := validateService(in.Name, in.DefaultDurationMinutes, in.DefaultPriceCents); err != nil {
		return nil, err
	}

	now := s.now()
	svc := &models.Service{
		Name:                   strings.TrimSpace(in.Name),
		DefaultDurationMinutes: in.DefaultDurationMinutes,
		DefaultPriceCents:      in.DefaultPriceCents,
		Color:                  in.Color,
		IsActive:               true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := s.Services.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.afterWrite(ctx)
	return svc, nil
}

// UpdateService applies a partial edit. Deactivating a service hides it from
// the active catalogue but leaves existing appointments untouched.
func (s *DefaultSchedulingService) UpdateService(ctx context.Context, id string, in UpdateServiceInput) (*models.Service, error) {
	svc, err := s.Services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		svc.Name = strings.TrimSpace(*in.Name)
	}
	if in.DefaultDurationMinutes != nil {
		svc.DefaultDurationMinutes = *in.DefaultDurationMinutes
	}
	if in.DefaultPriceCents != nil {
		svc.DefaultPriceCents = *in.DefaultPriceCents
	}
	if in.Color != nil {
		svc.Color = *in.Color
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := validateService(svc.Name, svc.DefaultDurationMinutes, svc.DefaultPriceCents); err != nil {
		return nil, err
	}

	svc.UpdatedAt = s.now()
	if err := s.Services.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.afterWrite(ctx)
	return svc, nil
}
