package domain

import "fmt"

// WeekWindow is the Sunday-through-Saturday range that scopes all
// scheduling queries and the dispatch board display.
type WeekWindow struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// WeekOf computes the week window containing anchor. The window starts on
// the Sunday on or before the anchor and ends six days later.
func WeekOf(anchor Date) WeekWindow {
	start := anchor.AddDays(-anchor.Weekday())
	return WeekWindow{
		Start: start,
		End:   start.AddDays(6),
	}
}

// Contains reports whether d falls inside the window, inclusive on both
// boundaries.
func (w WeekWindow) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// CacheKey identifies this window in the weekly query cache.
func (w WeekWindow) CacheKey() string {
	return fmt.Sprintf("shift_week_%s_%s", w.Start, w.End)
}

// Days lists the seven dates of the window in order.
func (w WeekWindow) Days() []Date {
	days := make([]Date, 7)
	for i := range days {
		days[i] = w.Start.AddDays(i)
	}
	return days
}
