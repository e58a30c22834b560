package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

const timeLayout = "15:04:05"

const minutesPerDay = 24 * 60

// interval is a shift's work window in minutes from midnight. Windows that
// cross midnight carry an end beyond 24h so that comparisons stay linear.
type interval struct {
	id    uuid.UUID
	start int
	end   int
}

func minutesOfDay(s string) (int, bool) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func toInterval(a *domain.ShiftAssignment) (interval, bool) {
	start, ok := minutesOfDay(a.StartTime)
	if !ok {
		return interval{}, false
	}
	end, ok := minutesOfDay(a.EndTime)
	if !ok {
		return interval{}, false
	}
	if end == start {
		// A zero-length window covers nothing and cannot overlap.
		return interval{}, false
	}
	if end < start {
		// A strictly inverted pair only ever reaches the detector as an
		// overnight window, copied from a spans-midnight template.
		end += minutesPerDay
	}
	return interval{id: a.ID, start: start, end: end}, true
}

type groupKey struct {
	driverID uuid.UUID
	date     string
}

// CountConflicts returns the number of overlapping assignment pairs across
// the given set, counted per driver per date. Unassigned shifts never
// conflict, and intervals that merely touch (end == start) do not count.
func CountConflicts(assignments []*domain.ShiftAssignment) int {
	total := 0
	for _, n := range ConflictsFor(assignments) {
		total += n
	}
	return total / 2
}

// ConflictsFor maps each assignment involved in at least one overlap to the
// number of overlaps it participates in. Assignments without conflicts are
// absent from the result.
func ConflictsFor(assignments []*domain.ShiftAssignment) map[uuid.UUID]int {
	groups := make(map[groupKey][]interval)

	for _, a := range assignments {
		if a.DriverID == nil {
			continue
		}
		iv, ok := toInterval(a)
		if !ok {
			continue
		}
		key := groupKey{driverID: *a.DriverID, date: a.ShiftDate.String()}
		groups[key] = append(groups[key], iv)
	}

	conflicts := make(map[uuid.UUID]int)

	for _, ivs := range groups {
		if len(ivs) < 2 {
			continue
		}
		sort.Slice(ivs, func(i, j int) bool {
			if ivs[i].start != ivs[j].start {
				return ivs[i].start < ivs[j].start
			}
			return ivs[i].end < ivs[j].end
		})

		for i := 0; i < len(ivs)-1; i++ {
			// Sorted by start time, so the first non-overlapping successor
			// ends the scan for this index.
			for j := i + 1; j < len(ivs); j++ {
				if ivs[i].end <= ivs[j].start {
					break
				}
				conflicts[ivs[i].id]++
				conflicts[ivs[j].id]++
			}
		}
	}

	return conflicts
}

// HasConflict reports whether adding candidate to the existing set would
// overlap another assignment for the same driver on the same date.
func HasConflict(existing []*domain.ShiftAssignment, candidate *domain.ShiftAssignment) bool {
	if candidate.DriverID == nil {
		return false
	}
	cand, ok := toInterval(candidate)
	if !ok {
		return false
	}

	for _, a := range existing {
		if a.DriverID == nil || *a.DriverID != *candidate.DriverID {
			continue
		}
		if !a.ShiftDate.Equal(candidate.ShiftDate) {
			continue
		}
		iv, ok := toInterval(a)
		if !ok {
			continue
		}
		if cand.start < iv.end && iv.start < cand.end {
			return true
		}
	}
	return false
}
