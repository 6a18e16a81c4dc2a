package scheduling

import (
	"reflect"
	"testing"
	"time"

	"agenda/models"
)

func weeklyTemplate(id string, days []int, start, end time.Time) *models.BlockedSlot {
	return &models.BlockedSlot{
		ID:          id,
		StartTime:   start,
		EndTime:     end,
		IsRecurring: true,
		RecurringPattern: &models.RecurringPattern{
			Type: models.RecurrenceWeekly,
			Days: days,
		},
	}
}

func TestExpandTemplateWeekly(t *testing.T) {
	// 2024-01-01 is a Monday.
	tmpl := weeklyTemplate("tpl-1", []int{1, 3, 5},
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC))

	occs := ExpandTemplate(tmpl,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))

	if len(occs) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(occs))
	}
	wantDates := []string{"2024-01-01", "2024-01-03", "2024-01-05"}
	for i, occ := range occs {
		if occ.Key.TemplateID != "tpl-1" {
			t.Errorf("occurrence %d template id = %q", i, occ.Key.TemplateID)
		}
		if occ.Key.Date != wantDates[i] {
			t.Errorf("occurrence %d date = %s, want %s", i, occ.Key.Date, wantDates[i])
		}
		if occ.Start.Hour() != 9 || occ.Start.Minute() != 0 {
			t.Errorf("occurrence %d start time-of-day = %v", i, occ.Start)
		}
		if got := occ.End.Sub(occ.Start); got != 90*time.Minute {
			t.Errorf("occurrence %d duration = %v, want 90m", i, got)
		}
	}
}

func TestExpandTemplateDaily(t *testing.T) {
	tmpl := &models.BlockedSlot{
		ID:          "tpl-2",
		StartTime:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
		IsRecurring: true,
		RecurringPattern: &models.RecurringPattern{
			Type: models.RecurrenceDaily,
		},
	}

	occs := ExpandTemplate(tmpl,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))
	if len(occs) != 7 {
		t.Fatalf("got %d occurrences, want 7", len(occs))
	}
}

func TestExpandTemplateIdempotent(t *testing.T) {
	tmpl := weeklyTemplate("tpl-3", []int{2, 4},
		time.Date(2024, 2, 6, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 6, 9, 0, 0, 0, time.UTC))
	w0 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	w1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	first := ExpandTemplate(tmpl, w0, w1)
	second := ExpandTemplate(tmpl, w0, w1)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated expansion of the same (template, window) differs")
	}
}

func TestExpandTemplateIncludesAnchorDay(t *testing.T) {
	// Anchor 2024-01-03 is a Wednesday; the pattern includes Wednesday.
	tmpl := weeklyTemplate("tpl-4", []int{3},
		time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 16, 0, 0, 0, time.UTC))

	occs := ExpandTemplate(tmpl,
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC))
	if len(occs) != 1 {
		t.Fatalf("got %d occurrences, want 1", len(occs))
	}
	if !occs[0].Start.Equal(tmpl.StartTime) {
		t.Errorf("anchor occurrence start = %v, want %v", occs[0].Start, tmpl.StartTime)
	}
}

func TestExpandTemplateNonRecurring(t *testing.T) {
	slot := &models.BlockedSlot{
		ID:        "one-off",
		StartTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	if occs := ExpandTemplate(slot, time.Time{}, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)); occs != nil {
		t.Errorf("non-recurring slot expanded to %d occurrences", len(occs))
	}
}

func TestExpandTemplateEmptyWindow(t *testing.T) {
	tmpl := weeklyTemplate("tpl-5", []int{1},
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if occs := ExpandTemplate(tmpl, at, at); occs != nil {
		t.Errorf("empty window produced %d occurrences", len(occs))
	}
}
