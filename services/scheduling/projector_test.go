package scheduling

import (
	"testing"
	"time"

	"agenda/models"
)

func day(d, h, m int) time.Time {
	return time.Date(2024, 5, d, h, m, 0, 0, time.UTC)
}

func TestBuildCalendarMergesAndSorts(t *testing.T) {
	w0 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	w1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	appts := []models.Appointment{
		{ID: "b", Status: models.StatusScheduled, StartTime: day(6, 9, 0), EndTime: day(6, 10, 0)},
		{ID: "a", Status: models.StatusScheduled, StartTime: day(6, 9, 0), EndTime: day(6, 9, 30)},
		{ID: "c", Status: models.StatusConfirmed, StartTime: day(3, 14, 0), EndTime: day(3, 15, 0)},
	}
	slots := []models.BlockedSlot{
		{ID: "s1", StartTime: day(6, 8, 0), EndTime: day(6, 9, 0), Reason: "Maintenance"},
	}

	events := BuildCalendar(w0, w1, appts, slots, nil, ProjectionOptions{Now: day(1, 0, 0)})
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}

	wantIDs := []string{"c", "s1", "a", "b"}
	for i, want := range wantIDs {
		if events[i].ID != want {
			t.Errorf("events[%d].ID = %s, want %s", i, events[i].ID, want)
		}
	}
	if events[1].Title != "Maintenance" {
		t.Errorf("blocked title = %q, want reason", events[1].Title)
	}
}

func TestBuildCalendarExpandsTemplates(t *testing.T) {
	w0 := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	w1 := time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)

	slots := []models.BlockedSlot{
		{
			ID:          "tpl",
			StartTime:   time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2024, 4, 1, 13, 0, 0, 0, time.UTC),
			IsRecurring: true,
			RecurringPattern: &models.RecurringPattern{
				Type: models.RecurrenceWeekly,
				Days: []int{1, 5}, // Monday, Friday
			},
		},
	}

	events := BuildCalendar(w0, w1, nil, slots, nil, ProjectionOptions{})
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for _, e := range events {
		if e.Type != models.EventTypeBlocked || e.ID != "tpl" || e.Occurrence == nil {
			t.Errorf("event = %+v, want blocked occurrence of tpl", e)
		}
	}
	if events[0].Occurrence.Date != "2024-05-06" || events[1].Occurrence.Date != "2024-05-10" {
		t.Errorf("occurrence dates = %s, %s", events[0].Occurrence.Date, events[1].Occurrence.Date)
	}
}

func TestBuildCalendarFiltersNeverApplyToBlocked(t *testing.T) {
	w0 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	w1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	appts := []models.Appointment{
		{ID: "a1", ServiceID: "svc-x", Status: models.StatusScheduled, StartTime: day(6, 9, 0), EndTime: day(6, 10, 0)},
		{ID: "a2", ServiceID: "svc-y", Status: models.StatusCancelled, StartTime: day(6, 10, 0), EndTime: day(6, 11, 0)},
	}
	slots := []models.BlockedSlot{
		{ID: "s1", StartTime: day(6, 12, 0), EndTime: day(6, 13, 0)},
	}

	events := BuildCalendar(w0, w1, appts, slots, nil, ProjectionOptions{
		Statuses:  []models.AppointmentStatus{models.StatusScheduled},
		ServiceID: "svc-x",
	})
	if len(events) != 2 {
		t.Fatalf("got %d events, want appointment a1 plus blocked s1", len(events))
	}
	if events[0].ID != "a1" || events[1].ID != "s1" {
		t.Errorf("event ids = %s, %s", events[0].ID, events[1].ID)
	}

	only := BuildCalendar(w0, w1, appts, slots, nil, ProjectionOptions{
		Types: []models.CalendarEventType{models.EventTypeBlocked},
	})
	if len(only) != 1 || only[0].ID != "s1" {
		t.Errorf("type filter kept %+v, want just s1", only)
	}
}

func TestBuildCalendarDerivedFlags(t *testing.T) {
	now := day(10, 12, 0)
	appts := []models.Appointment{
		{ID: "past-open", Status: models.StatusScheduled, StartTime: day(9, 9, 0), EndTime: day(9, 10, 0)},
		{ID: "past-done", Status: models.StatusCompleted, StartTime: day(9, 10, 0), EndTime: day(9, 11, 0),
			FinancialRecords: []models.FinancialRecord{{PaymentStatus: models.PaymentPending, AmountCents: 5000}}},
		{ID: "future", Status: models.StatusConfirmed, StartTime: day(11, 9, 0), EndTime: day(11, 10, 0),
			FinancialRecords: []models.FinancialRecord{{PaymentStatus: models.PaymentPaid, AmountCents: 5000}}},
	}

	events := BuildCalendar(
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		appts, nil, nil, ProjectionOptions{Now: now})

	byID := map[string]models.CalendarEvent{}
	for _, e := range events {
		byID[e.ID] = e
	}

	if !byID["past-open"].Overdue {
		t.Error("scheduled appointment in the past is not overdue")
	}
	if byID["past-done"].Overdue {
		t.Error("completed appointment flagged overdue")
	}
	if !byID["past-done"].PendingPayment {
		t.Error("pending financial record not flagged")
	}
	if byID["future"].Overdue || byID["future"].PendingPayment {
		t.Error("future paid appointment carries derived flags")
	}
}

func TestBuildCalendarServiceColors(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a1", ServiceID: "svc-x", Status: models.StatusScheduled, StartTime: day(6, 9, 0), EndTime: day(6, 10, 0)},
	}
	events := BuildCalendar(
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		appts, nil, map[string]string{"svc-x": "#ff8800"}, ProjectionOptions{})
	if events[0].Color != "#ff8800" {
		t.Errorf("color = %q, want service color", events[0].Color)
	}
}

func TestMergeAppointmentFeedsActiveWins(t *testing.T) {
	active := []models.Appointment{
		{ID: "a1", Status: models.StatusConfirmed, StartTime: day(6, 9, 0)},
	}
	historical := []models.Appointment{
		{ID: "a1", Status: models.StatusScheduled, StartTime: day(6, 9, 0)},
		{ID: "a2", Status: models.StatusCompleted, StartTime: day(5, 9, 0)},
	}

	merged := MergeAppointmentFeeds(active, historical)
	if len(merged) != 2 {
		t.Fatalf("got %d appointments, want 2", len(merged))
	}
	if merged[0].ID != "a2" || merged[1].ID != "a1" {
		t.Errorf("order = %s, %s", merged[0].ID, merged[1].ID)
	}
	if merged[1].Status != models.StatusConfirmed {
		t.Errorf("duplicate resolved to %s, want the active record", merged[1].Status)
	}
}
