package scheduling

import (
	"context"
	"time"

	schedulingRepo "agenda/database/repository/scheduling"
	"agenda/models"
)

// CalendarQuery parameterizes one calendar feed request.
type CalendarQuery struct {
	ContactID string                     // Empty means all contacts
	StartDate time.Time                  // Window start, inclusive
	EndDate   time.Time                  // Window end, exclusive
	Types     []models.CalendarEventType // Empty means both appointment and blocked events
	Statuses  []models.AppointmentStatus // Appointment filter; never applies to blocked events
	ServiceID string                     // Appointment filter; never applies to blocked events
}

// CreateAppointmentInput carries the fields for a new appointment.
type CreateAppointmentInput struct {
	ContactID  string
	ServiceID  string
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	PriceCents int64
	Notes      string
}

// UpdateAppointmentInput carries a partial full-field edit. Nil fields keep
// their current value.
type UpdateAppointmentInput struct {
	ServiceID  *string
	Title      *string
	StartTime  *time.Time
	EndTime    *time.Time
	PriceCents *int64
	Notes      *string
}

// CreateBlockedSlotInput carries the fields for a new blocked slot or
// recurring template.
type CreateBlockedSlotInput struct {
	StartTime        time.Time
	EndTime          time.Time
	Reason           string
	IsRecurring      bool
	RecurringPattern *models.RecurringPattern
}

// CreateServiceInput carries the fields for a new catalogue service.
type CreateServiceInput struct {
	Name                   string
	DefaultDurationMinutes int
	DefaultPriceCents      int64
	Color                  string
}

// UpdateServiceInput carries a partial service edit.
type UpdateServiceInput struct {
	Name                   *string
	DefaultDurationMinutes *int
	DefaultPriceCents      *int64
	Color                  *string
	IsActive               *bool
}

// SchedulingService is the operation surface of the scheduling core.
type SchedulingService interface {
	GetCalendarEvents(ctx context.Context, q CalendarQuery) ([]models.CalendarEvent, error)
	CreateAppointment(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, in UpdateAppointmentInput) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, target models.AppointmentStatus, reason string) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	CreateBlockedSlot(ctx context.Context, in CreateBlockedSlotInput) (*models.BlockedSlot, error)
	DeleteBlockedSlot(ctx context.Context, templateID string) error
	GetServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	CreateService(ctx context.Context, in CreateServiceInput) (*models.Service, error)
	UpdateService(ctx context.Context, id string, in UpdateServiceInput) (*models.Service, error)
}

// ReminderScheduler queues appointment reminders for background delivery.
// Implementations live at the boundary (see cron); the core only hands over
// the appointment.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment) error
	CancelAppointmentReminder(ctx context.Context, appointmentID string) error
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	Appointments schedulingRepo.AppointmentRepository
	BlockedSlots schedulingRepo.BlockedSlotRepository
	Services     schedulingRepo.ServiceRepository
	Tx           schedulingRepo.TxRunner
	Cache        *CalendarCache    // Optional calendar feed cache
	Reminders    ReminderScheduler // Optional reminder queue
	NowFunc      func() time.Time  // Defaults to time.Now
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.NowFunc != nil {
		return s.NowFunc().UTC()
	}
	return time.Now().UTC()
}

// inTx runs fn inside the repository transaction when a runner is wired,
// falling back to a plain call otherwise (tests use in-memory fakes).
func (s *DefaultSchedulingService) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.Tx == nil {
		return fn(ctx)
	}
	return s.Tx.WithTransaction(ctx, fn)
}
