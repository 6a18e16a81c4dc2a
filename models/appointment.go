package models

import "time"

// AppointmentStatus represents the lifecycle status of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// BlockingStatuses are the statuses whose appointments occupy time in
// conflict detection. Cancelled, no-show and completed appointments never
// block a slot.
var BlockingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
}

// PaymentStatus is the settlement state of a single financial record entry.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentWaived  PaymentStatus = "waived"
)

// FinancialRecord is one ordered entry of an appointment's payment history.
type FinancialRecord struct {
	PaymentStatus PaymentStatus `bson:"payment_status" json:"payment_status"`
	AmountCents   int64         `bson:"amount_cents" json:"amount_cents"`
	RecordedAt    time.Time     `bson:"recorded_at" json:"recorded_at"`
}

// Appointment represents a time-based booking tied to a contact and an
// optional service.
type Appointment struct {
	ID                 string            `bson:"id" json:"id"`                                                   // Unique appointment identifier (UUID)
	ContactID          string            `bson:"contact_id" json:"contact_id"`                                   // Contact this appointment belongs to
	ServiceID          string            `bson:"service_id,omitempty" json:"service_id,omitempty"`               // Optional service reference
	Title              string            `bson:"title" json:"title"`                                             // Display title
	StartTime          time.Time         `bson:"start_time" json:"start_time"`                                   // Absolute UTC instant
	EndTime            time.Time         `bson:"end_time" json:"end_time"`                                       // Absolute UTC instant, strictly after StartTime
	PriceCents         int64             `bson:"price_cents" json:"price_cents"`                                 // Agreed price in cents
	Notes              string            `bson:"notes,omitempty" json:"notes,omitempty"`                         // Free-form notes, at most MaxNotesLength chars
	Status             AppointmentStatus `bson:"status" json:"status"`                                           // Lifecycle status, mutated only through the lifecycle machine
	CancellationReason string            `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"` // Set only when Status is cancelled
	FinancialRecords   []FinancialRecord `bson:"financial_records,omitempty" json:"financial_records,omitempty"` // Ordered payment history
	CreatedAt          time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time         `bson:"updated_at" json:"updated_at"`
}

// IsTerminal returns true if the appointment has reached a final status.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled || a.Status == StatusNoShow
}

// IsBlocking returns true if the appointment occupies time for conflict
// detection purposes.
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeEdited returns true if full-field edits are still permitted.
func (a *Appointment) CanBeEdited() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeDeleted returns true if the appointment may be removed. Completed
// appointments are never hard-deleted.
func (a *Appointment) CanBeDeleted() bool {
	return a.Status != StatusCompleted
}

// HasPendingPayment returns true if any financial record entry is still
// awaiting settlement.
func (a *Appointment) HasPendingPayment() bool {
	for _, r := range a.FinancialRecords {
		if r.PaymentStatus == PaymentPending {
			return true
		}
	}
	return false
}

// DurationMinutes returns the appointment length in whole minutes.
func (a *Appointment) DurationMinutes() int {
	return int(a.EndTime.Sub(a.StartTime) / time.Minute)
}
