package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

func testDriver(status domain.DriverStatus) *domain.Driver {
	return &domain.Driver{ID: uuid.New(), FirstName: "Test", LastName: "Driver", Status: status}
}

func testTemplate(name, start, end string) *domain.ShiftTemplate {
	return &domain.ShiftTemplate{
		ID:        uuid.New(),
		Name:      name,
		ShiftType: domain.ShiftTypeDriver,
		StartTime: start,
		EndTime:   end,
	}
}

func TestPlannerCoversEverySlot(t *testing.T) {
	window := domain.WeekOf(domain.NewDate(2025, time.March, 12))
	drivers := []*domain.Driver{testDriver(domain.DriverActive), testDriver(domain.DriverActive)}
	templates := []*domain.ShiftTemplate{
		testTemplate("Morning Route", "08:00:00", "12:00:00"),
		testTemplate("Afternoon Route", "13:00:00", "17:00:00"),
	}

	planner := NewPlanner(Parameters{}, window, drivers, templates, nil)
	proposals, err := planner.Plan()
	require.NoError(t, err)

	// Two templates across seven days, nothing pre-existing.
	require.Len(t, proposals, 14)

	for _, p := range proposals {
		require.NotNil(t, p.DriverID)
		require.NotNil(t, p.TemplateID)
		assert.True(t, window.Contains(p.ShiftDate))
		assert.Equal(t, domain.AssignmentPending, p.Status)
	}

	assert.Equal(t, 0, CountConflicts(proposals), "proposals never overlap each other")
}

func TestPlannerSkipsCoveredSlots(t *testing.T) {
	window := domain.WeekOf(domain.NewDate(2025, time.March, 12))
	driver := testDriver(domain.DriverActive)
	tmpl := testTemplate("Morning Route", "08:00:00", "12:00:00")

	existing := []*domain.ShiftAssignment{
		{
			ID:         uuid.New(),
			DriverID:   &driver.ID,
			ShiftDate:  window.Start,
			StartTime:  tmpl.StartTime,
			EndTime:    tmpl.EndTime,
			TemplateID: &tmpl.ID,
			Status:     domain.AssignmentScheduled,
		},
	}

	planner := NewPlanner(Parameters{}, window, []*domain.Driver{driver}, []*domain.ShiftTemplate{tmpl}, existing)
	proposals, err := planner.Plan()
	require.NoError(t, err)

	require.Len(t, proposals, 6)
	for _, p := range proposals {
		assert.False(t, p.ShiftDate.Equal(window.Start), "the already covered day is left alone")
	}
}

func TestPlannerNeverIntroducesConflicts(t *testing.T) {
	window := domain.WeekOf(domain.NewDate(2025, time.March, 12))
	driver := testDriver(domain.DriverActive)
	templates := []*domain.ShiftTemplate{
		testTemplate("Early", "08:00:00", "12:00:00"),
		testTemplate("Overlapping", "10:00:00", "14:00:00"),
		testTemplate("Late", "14:00:00", "18:00:00"),
	}

	planner := NewPlanner(Parameters{MaxShiftsPerDriverPerDay: 3}, window, []*domain.Driver{driver}, templates, nil)
	proposals, err := planner.Plan()
	require.NoError(t, err)

	// With one driver only two of the three templates fit per day.
	require.Len(t, proposals, 14)
	assert.Equal(t, 0, CountConflicts(proposals))
}

func TestPlannerRespectsPerDayCap(t *testing.T) {
	window := domain.WeekOf(domain.NewDate(2025, time.March, 12))
	driver := testDriver(domain.DriverActive)
	templates := []*domain.ShiftTemplate{
		testTemplate("First", "06:00:00", "08:00:00"),
		testTemplate("Second", "09:00:00", "11:00:00"),
		testTemplate("Third", "12:00:00", "14:00:00"),
	}

	planner := NewPlanner(Parameters{MaxShiftsPerDriverPerDay: 2}, window, []*domain.Driver{driver}, templates, nil)
	proposals, err := planner.Plan()
	require.NoError(t, err)

	perDay := make(map[string]int)
	for _, p := range proposals {
		perDay[p.ShiftDate.String()]++
	}
	for day, n := range perDay {
		assert.LessOrEqual(t, n, 2, "day %s exceeds the cap", day)
	}
}

func TestPlannerIgnoresInactiveDrivers(t *testing.T) {
	window := domain.WeekOf(domain.NewDate(2025, time.March, 12))
	active := testDriver(domain.DriverActive)
	inactive := testDriver(domain.DriverInactive)
	tmpl := testTemplate("Morning Route", "08:00:00", "12:00:00")

	planner := NewPlanner(Parameters{}, window, []*domain.Driver{inactive, active}, []*domain.ShiftTemplate{tmpl}, nil)
	proposals, err := planner.Plan()
	require.NoError(t, err)

	for _, p := range proposals {
		require.NotNil(t, p.DriverID)
		assert.Equal(t, active.ID, *p.DriverID)
	}
}

func TestPlannerNoActiveDrivers(t *testing.T) {
	window := domain.WeekOf(domain.NewDate(2025, time.March, 12))
	tmpl := testTemplate("Morning Route", "08:00:00", "12:00:00")

	planner := NewPlanner(Parameters{}, window, []*domain.Driver{testDriver(domain.DriverInactive)}, []*domain.ShiftTemplate{tmpl}, nil)
	_, err := planner.Plan()
	assert.Error(t, err)
}

func TestPlannerBalancesWorkload(t *testing.T) {
	window := domain.WeekOf(domain.NewDate(2025, time.March, 12))
	drivers := []*domain.Driver{testDriver(domain.DriverActive), testDriver(domain.DriverActive)}
	templates := []*domain.ShiftTemplate{
		testTemplate("Morning Route", "08:00:00", "12:00:00"),
		testTemplate("Evening Route", "16:00:00", "20:00:00"),
	}

	planner := NewPlanner(Parameters{}, window, drivers, templates, nil)
	proposals, err := planner.Plan()
	require.NoError(t, err)

	counts := make(map[uuid.UUID]int)
	for _, p := range proposals {
		counts[*p.DriverID]++
	}
	require.Len(t, counts, 2, "both drivers get work")
	assert.Equal(t, counts[drivers[0].ID], counts[drivers[1].ID], "equal-length shifts split evenly")
}
