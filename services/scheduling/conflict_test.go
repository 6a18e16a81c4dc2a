package scheduling

import (
	"testing"
	"time"

	"agenda/models"
)

func at(h, m int) time.Time {
	return time.Date(2024, 5, 6, h, m, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{at(9, 0), at(10, 0)}, Interval{at(11, 0), at(12, 0)}, false},
		{"back to back", Interval{at(9, 0), at(10, 0)}, Interval{at(10, 0), at(11, 0)}, false},
		{"partial overlap", Interval{at(9, 0), at(10, 30)}, Interval{at(10, 0), at(11, 0)}, true},
		{"contained", Interval{at(9, 0), at(12, 0)}, Interval{at(10, 0), at(11, 0)}, true},
		{"identical", Interval{at(9, 0), at(10, 0)}, Interval{at(9, 0), at(10, 0)}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(c.b); got != c.want {
				t.Errorf("Overlaps = %v, want %v", got, c.want)
			}
			if got := c.b.Overlaps(c.a); got != c.want {
				t.Errorf("Overlaps is not symmetric: reversed = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFindConflictsAppointments(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a1", Status: models.StatusScheduled, StartTime: at(9, 0), EndTime: at(10, 0)},
		{ID: "a2", Status: models.StatusCancelled, StartTime: at(9, 0), EndTime: at(10, 0)},
		{ID: "a3", Status: models.StatusConfirmed, StartTime: at(10, 0), EndTime: at(11, 0)},
	}

	got := FindConflicts(Interval{at(9, 30), at(10, 0)}, "", appts, nil)
	if len(got) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(got))
	}
	if got[0].Kind != ConflictAppointment || got[0].ID != "a1" {
		t.Errorf("conflict = %+v, want appointment a1", got[0])
	}
}

func TestFindConflictsIgnoresSelf(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a1", Status: models.StatusScheduled, StartTime: at(9, 0), EndTime: at(10, 0)},
	}
	if got := FindConflicts(Interval{at(9, 0), at(10, 0)}, "a1", appts, nil); len(got) != 0 {
		t.Errorf("edit conflicted with itself: %+v", got)
	}
}

func TestFindConflictsOneOffSlot(t *testing.T) {
	slots := []models.BlockedSlot{
		{ID: "s1", StartTime: at(12, 0), EndTime: at(13, 0)},
	}
	got := FindConflicts(Interval{at(12, 30), at(14, 0)}, "", nil, slots)
	if len(got) != 1 || got[0].Kind != ConflictBlockedSlot || got[0].ID != "s1" {
		t.Fatalf("got %+v, want one blocked conflict for s1", got)
	}
	if got[0].Occurrence != nil {
		t.Error("one-off slot conflict carries an occurrence key")
	}
}

func TestFindConflictsRecurringOccurrence(t *testing.T) {
	// Daily lunch block anchored weeks earlier; the candidate is on a later day.
	slots := []models.BlockedSlot{
		{
			ID:          "tpl-lunch",
			StartTime:   time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2024, 4, 1, 13, 0, 0, 0, time.UTC),
			IsRecurring: true,
			RecurringPattern: &models.RecurringPattern{
				Type: models.RecurrenceDaily,
			},
		},
	}

	got := FindConflicts(Interval{at(12, 30), at(13, 30)}, "", nil, slots)
	if len(got) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(got))
	}
	c := got[0]
	if c.ID != "tpl-lunch" || c.Occurrence == nil {
		t.Fatalf("conflict = %+v, want occurrence of tpl-lunch", c)
	}
	if c.Occurrence.Date != "2024-05-06" {
		t.Errorf("occurrence date = %s, want 2024-05-06", c.Occurrence.Date)
	}
}

func TestFindConflictsBackToBack(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a1", Status: models.StatusScheduled, StartTime: at(9, 0), EndTime: at(10, 0)},
	}
	slots := []models.BlockedSlot{
		{ID: "s1", StartTime: at(11, 0), EndTime: at(12, 0)},
	}
	if got := FindConflicts(Interval{at(10, 0), at(11, 0)}, "", appts, slots); len(got) != 0 {
		t.Errorf("back-to-back intervals reported as conflicts: %+v", got)
	}
}

func TestFindConflictsListsEveryBlocker(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a1", Status: models.StatusScheduled, StartTime: at(9, 0), EndTime: at(10, 0)},
		{ID: "a2", Status: models.StatusConfirmed, StartTime: at(9, 30), EndTime: at(10, 30)},
	}
	slots := []models.BlockedSlot{
		{ID: "s1", StartTime: at(9, 45), EndTime: at(10, 15)},
	}
	got := FindConflicts(Interval{at(9, 0), at(11, 0)}, "", appts, slots)
	if len(got) != 3 {
		t.Fatalf("got %d conflicts, want 3", len(got))
	}
}
