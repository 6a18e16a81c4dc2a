package scheduling

import (
	"time"

	"agenda/models"
)

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals conflict. Back-to-back
// intervals, where one ends exactly when the other begins, do not. The
// relation is symmetric.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// FindConflicts tests a candidate interval against every blocking entity in
// scope: all blocked-slot occurrences (recurring templates expanded over the
// candidate's days, plus non-recurring slots) unconditionally, and
// appointments only while their status is scheduled or confirmed. ignoreID
// excludes the entity being edited from its own check. The returned slice is
// empty when the candidate is free.
func FindConflicts(candidate Interval, ignoreID string, appts []models.Appointment, slots []models.BlockedSlot) []Conflict {
	var out []Conflict

	for i := range appts {
		a := &appts[i]
		if a.ID == ignoreID || !a.IsBlocking() {
			continue
		}
		if candidate.Overlaps(Interval{Start: a.StartTime, End: a.EndTime}) {
			out = append(out, Conflict{
				Kind:  ConflictAppointment,
				ID:    a.ID,
				Start: a.StartTime,
				End:   a.EndTime,
			})
		}
	}

	// Expand recurring templates over the days the candidate touches so
	// virtual occurrences block exactly like stored intervals.
	expandStart := dayStart(candidate.Start)
	expandEnd := dayStart(candidate.End).AddDate(0, 0, 1)

	for i := range slots {
		s := &slots[i]
		if s.ID == ignoreID {
			continue
		}
		if !s.IsRecurring {
			if candidate.Overlaps(Interval{Start: s.StartTime, End: s.EndTime}) {
				out = append(out, Conflict{
					Kind:  ConflictBlockedSlot,
					ID:    s.ID,
					Start: s.StartTime,
					End:   s.EndTime,
				})
			}
			continue
		}
		for _, occ := range ExpandTemplate(s, expandStart, expandEnd) {
			if candidate.Overlaps(Interval{Start: occ.Start, End: occ.End}) {
				key := occ.Key
				out = append(out, Conflict{
					Kind:       ConflictBlockedSlot,
					ID:         s.ID,
					Occurrence: &key,
					Start:      occ.Start,
					End:        occ.End,
				})
			}
		}
	}

	return out
}
