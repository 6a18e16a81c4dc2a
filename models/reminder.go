package models

// ReminderPayload is the task body queued for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ContactID     string `json:"contactId"`
	Title         string `json:"title"`
	StartTime     string `json:"startTime"` // RFC3339
}
