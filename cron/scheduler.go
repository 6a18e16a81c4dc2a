package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"agenda/config"
	"agenda/models"
	"agenda/services/tasks"
)

// AsynqReminderScheduler queues appointment reminders on the asynq worker.
type AsynqReminderScheduler struct {
	Client    *asynq.Client
	Inspector *asynq.Inspector
	Lead      time.Duration
}

// NewAsynqReminderScheduler builds a scheduler from the configured Redis
// queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	if lead <= 0 {
		lead = time.Hour
	}
	return &AsynqReminderScheduler{
		Client:    asynq.NewClient(redisOpts),
		Inspector: asynq.NewInspector(redisOpts),
		Lead:      lead,
	}
}

// ScheduleAppointmentReminder queues a reminder to fire before the
// appointment starts. Rescheduling replaces any reminder already queued for
// the same appointment; appointments starting too soon get no reminder.
func (s *AsynqReminderScheduler) ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	fireAt := appt.StartTime.Add(-s.Lead)
	if !fireAt.After(time.Now()) {
		return s.CancelAppointmentReminder(ctx, appt.ID)
	}

	// Drop the stale task first; asynq task ids are unique while queued.
	if err := s.CancelAppointmentReminder(ctx, appt.ID); err != nil {
		return err
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		ContactID:     appt.ContactID,
		Title:         appt.Title,
		StartTime:     appt.StartTime.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

// CancelAppointmentReminder removes a queued reminder, if one exists.
func (s *AsynqReminderScheduler) CancelAppointmentReminder(_ context.Context, appointmentID string) error {
	err := s.Inspector.DeleteTask("default", tasks.ReminderTaskID(appointmentID))
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return fmt.Errorf("failed to delete reminder task: %w", err)
}
