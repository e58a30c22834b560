package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

func assignment(driverID *uuid.UUID, date domain.Date, start, end string) *domain.ShiftAssignment {
	return &domain.ShiftAssignment{
		ID:        uuid.New(),
		DriverID:  driverID,
		ShiftDate: date,
		StartTime: start,
		EndTime:   end,
		Status:    domain.AssignmentScheduled,
	}
}

func TestCountConflicts(t *testing.T) {
	day := domain.NewDate(2025, time.March, 10)
	nextDay := day.AddDays(1)
	alice := uuid.New()
	bob := uuid.New()

	tests := []struct {
		name        string
		assignments []*domain.ShiftAssignment
		want        int
	}{
		{
			name: "overlapping pair for one driver",
			assignments: []*domain.ShiftAssignment{
				assignment(&alice, day, "08:00:00", "12:00:00"),
				assignment(&alice, day, "11:00:00", "16:00:00"),
			},
			want: 1,
		},
		{
			name: "touching intervals do not conflict",
			assignments: []*domain.ShiftAssignment{
				assignment(&alice, day, "08:00:00", "12:00:00"),
				assignment(&alice, day, "12:00:00", "16:00:00"),
			},
			want: 0,
		},
		{
			name: "same window on different drivers",
			assignments: []*domain.ShiftAssignment{
				assignment(&alice, day, "08:00:00", "12:00:00"),
				assignment(&bob, day, "08:00:00", "12:00:00"),
			},
			want: 0,
		},
		{
			name: "same window on different dates",
			assignments: []*domain.ShiftAssignment{
				assignment(&alice, day, "08:00:00", "12:00:00"),
				assignment(&alice, nextDay, "08:00:00", "12:00:00"),
			},
			want: 0,
		},
		{
			name: "unassigned shifts never conflict",
			assignments: []*domain.ShiftAssignment{
				assignment(nil, day, "08:00:00", "12:00:00"),
				assignment(nil, day, "08:00:00", "12:00:00"),
			},
			want: 0,
		},
		{
			name: "three mutually overlapping shifts count pairwise",
			assignments: []*domain.ShiftAssignment{
				assignment(&alice, day, "08:00:00", "14:00:00"),
				assignment(&alice, day, "09:00:00", "15:00:00"),
				assignment(&alice, day, "10:00:00", "16:00:00"),
			},
			want: 3,
		},
		{
			name: "identical duplicated shifts",
			assignments: []*domain.ShiftAssignment{
				assignment(&alice, day, "08:00:00", "12:00:00"),
				assignment(&alice, day, "08:00:00", "12:00:00"),
			},
			want: 1,
		},
		{
			name: "overnight shift overlaps a late evening shift",
			assignments: []*domain.ShiftAssignment{
				assignment(&alice, day, "22:00:00", "06:00:00"),
				assignment(&alice, day, "21:00:00", "23:00:00"),
			},
			want: 1,
		},
		{
			name: "zero-length interval conflicts with nothing",
			assignments: []*domain.ShiftAssignment{
				assignment(&alice, day, "08:00:00", "08:00:00"),
				assignment(&alice, day, "10:00:00", "12:00:00"),
			},
			want: 0,
		},
		{
			name: "zero-length interval inside another shift",
			assignments: []*domain.ShiftAssignment{
				assignment(&alice, day, "10:00:00", "10:00:00"),
				assignment(&alice, day, "08:00:00", "12:00:00"),
			},
			want: 0,
		},
		{
			name: "unparseable times are skipped",
			assignments: []*domain.ShiftAssignment{
				assignment(&alice, day, "8am", "noon"),
				assignment(&alice, day, "08:00:00", "12:00:00"),
			},
			want: 0,
		},
		{
			name:        "empty set",
			assignments: nil,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountConflicts(tt.assignments))
		})
	}
}

func TestConflictsFor(t *testing.T) {
	day := domain.NewDate(2025, time.March, 10)
	alice := uuid.New()

	a := assignment(&alice, day, "08:00:00", "12:00:00")
	b := assignment(&alice, day, "11:00:00", "16:00:00")
	c := assignment(&alice, day, "16:00:00", "20:00:00")

	conflicts := ConflictsFor([]*domain.ShiftAssignment{a, b, c})

	require.Len(t, conflicts, 2)
	assert.Equal(t, 1, conflicts[a.ID])
	assert.Equal(t, 1, conflicts[b.ID])
	_, ok := conflicts[c.ID]
	assert.False(t, ok, "conflict-free assignments are absent from the map")
}

func TestHasConflict(t *testing.T) {
	day := domain.NewDate(2025, time.March, 10)
	alice := uuid.New()
	bob := uuid.New()

	existing := []*domain.ShiftAssignment{
		assignment(&alice, day, "08:00:00", "12:00:00"),
	}

	assert.True(t, HasConflict(existing, assignment(&alice, day, "11:00:00", "16:00:00")))
	assert.False(t, HasConflict(existing, assignment(&alice, day, "12:00:00", "16:00:00")))
	assert.False(t, HasConflict(existing, assignment(&bob, day, "08:00:00", "12:00:00")))
	assert.False(t, HasConflict(existing, assignment(&alice, day.AddDays(1), "08:00:00", "12:00:00")))
	assert.False(t, HasConflict(existing, assignment(nil, day, "08:00:00", "12:00:00")))
	assert.False(t, HasConflict(existing, assignment(&alice, day, "09:00:00", "09:00:00")), "zero-length candidate covers nothing")
}
