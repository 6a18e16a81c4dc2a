package scheduling

import "time"

// FetchWindow computes the half-open fetch window for a focus date:
// [startOfMonth(focus-7d), endOfMonth(focus+7d)). The 7-day buffer covers the
// partial weeks visible at month-view edges, so navigating to an adjacent
// week or day never triggers a refetch.
func FetchWindow(focus time.Time) (time.Time, time.Time) {
	f := focus.UTC()
	start := startOfMonth(f.AddDate(0, 0, -7))
	end := startOfMonth(f.AddDate(0, 0, 7)).AddDate(0, 1, 0)
	return start, end
}

func startOfMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}
