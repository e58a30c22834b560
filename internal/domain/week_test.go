package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name      string
		anchor    Date
		wantStart string
		wantEnd   string
	}{
		{
			name:      "midweek anchor snaps back to sunday",
			anchor:    NewDate(2025, time.March, 12), // a Wednesday
			wantStart: "2025-03-09",
			wantEnd:   "2025-03-15",
		},
		{
			name:      "sunday anchor is its own start",
			anchor:    NewDate(2025, time.March, 9),
			wantStart: "2025-03-09",
			wantEnd:   "2025-03-15",
		},
		{
			name:      "saturday anchor is its own end",
			anchor:    NewDate(2025, time.March, 15),
			wantStart: "2025-03-09",
			wantEnd:   "2025-03-15",
		},
		{
			name:      "window crossing a month boundary",
			anchor:    NewDate(2025, time.April, 1),
			wantStart: "2025-03-30",
			wantEnd:   "2025-04-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := WeekOf(tt.anchor)
			assert.Equal(t, tt.wantStart, window.Start.String())
			assert.Equal(t, tt.wantEnd, window.End.String())
		})
	}
}

func TestWeekWindowContains(t *testing.T) {
	window := WeekOf(NewDate(2025, time.March, 12))

	assert.True(t, window.Contains(window.Start), "start boundary is inclusive")
	assert.True(t, window.Contains(window.End), "end boundary is inclusive")
	assert.True(t, window.Contains(NewDate(2025, time.March, 12)))
	assert.False(t, window.Contains(window.Start.AddDays(-1)))
	assert.False(t, window.Contains(window.End.AddDays(1)))
}

func TestWeekWindowDays(t *testing.T) {
	window := WeekOf(NewDate(2025, time.March, 12))

	days := window.Days()
	require.Len(t, days, 7)
	assert.True(t, days[0].Equal(window.Start))
	assert.True(t, days[6].Equal(window.End))
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].Equal(days[i-1].AddDays(1)))
	}
}

func TestWeekWindowCacheKey(t *testing.T) {
	window := WeekOf(NewDate(2025, time.March, 12))
	assert.Equal(t, "shift_week_2025-03-09_2025-03-15", window.CacheKey())

	// Every anchor inside the same week yields the same key.
	for _, day := range window.Days() {
		assert.Equal(t, window.CacheKey(), WeekOf(day).CacheKey())
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", d.String())
	assert.Equal(t, 0, d.Weekday())

	_, err = ParseDate("03/09/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.December, 31)

	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-31"`, string(raw))

	var parsed Date
	require.NoError(t, parsed.UnmarshalJSON(raw))
	assert.True(t, parsed.Equal(d))

	var zero Date
	require.NoError(t, zero.UnmarshalJSON([]byte("null")))
	assert.True(t, zero.IsZero())
}
