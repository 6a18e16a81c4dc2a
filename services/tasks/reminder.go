package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"agenda/models"
)

const TypeSendReminder = "reminder:send"

// ReminderTaskID returns the stable task id for an appointment, so a queued
// reminder can be replaced or cancelled later.
func ReminderTaskID(appointmentID string) string {
	return "reminder:" + appointmentID
}

// NewReminderTask builds a reminder task scheduled to fire at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(payload.AppointmentID)),
	}

	return task, opts, nil
}
