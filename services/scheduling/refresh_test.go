package scheduling

import (
	"context"
	"testing"
	"time"

	"agenda/models"
)

func TestRefreshLoopDeliversAndStops(t *testing.T) {
	svc, appts, _, _ := newTestService()
	appts.items["a1"] = &models.Appointment{
		ID: "a1", ContactID: "c1", Title: "X", Status: models.StatusScheduled,
		StartTime: time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC),
	}

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		svc.RefreshLoop(ctx, CalendarQuery{
			StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		}, 5*time.Millisecond, func(events []models.CalendarEvent) {
			select {
			case got <- len(events):
			default:
			}
		})
		close(done)
	}()

	select {
	case n := <-got:
		if n != 1 {
			t.Errorf("tick delivered %d events, want 1", n)
		}
	case <-time.After(time.Second):
		t.Fatal("no tick delivered")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop on cancel")
	}
}
