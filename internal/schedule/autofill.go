package schedule

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

// Parameters tunes the autofill planner.
type Parameters struct {
	// MaxShiftsPerDriverPerDay caps how many shifts a single driver may
	// pick up on one date, existing assignments included.
	MaxShiftsPerDriverPerDay int
}

// Planner proposes assignments that cover every template on every day of a
// week the template is not yet covered, without ever introducing an
// overlap for any driver. Proposals are a dry run; nothing is written.
type Planner struct {
	params    Parameters
	drivers   []*domain.Driver
	templates []*domain.ShiftTemplate
	existing  []*domain.ShiftAssignment
	window    domain.WeekWindow
}

func NewPlanner(params Parameters, window domain.WeekWindow, drivers []*domain.Driver, templates []*domain.ShiftTemplate, existing []*domain.ShiftAssignment) *Planner {
	if params.MaxShiftsPerDriverPerDay <= 0 {
		params.MaxShiftsPerDriverPerDay = 2
	}

	active := make([]*domain.Driver, 0, len(drivers))
	for _, d := range drivers {
		if d.Status == domain.DriverActive {
			active = append(active, d)
		}
	}

	return &Planner{
		params:    params,
		drivers:   active,
		templates: templates,
		existing:  existing,
		window:    window,
	}
}

// Plan walks each uncovered (template, day) slot and hands it to the
// active driver with the lowest planned workload who can take it without
// a conflict. Slots nobody can take are skipped, not forced.
func (p *Planner) Plan() ([]*domain.ShiftAssignment, error) {
	if len(p.drivers) == 0 {
		return nil, fmt.Errorf("no active drivers to plan for")
	}

	workload := make(map[uuid.UUID]int, len(p.drivers))
	perDay := make(map[string]int)
	for _, d := range p.drivers {
		workload[d.ID] = 0
	}
	for _, a := range p.existing {
		if a.DriverID == nil {
			continue
		}
		if iv, ok := toInterval(a); ok {
			workload[*a.DriverID] += iv.end - iv.start
		}
		perDay[dayKey(*a.DriverID, a.ShiftDate)]++
	}

	pool := append([]*domain.ShiftAssignment{}, p.existing...)
	proposals := make([]*domain.ShiftAssignment, 0)

	for _, day := range p.window.Days() {
		for _, tmpl := range p.templates {
			if p.covered(pool, tmpl.ID, day) {
				continue
			}

			candidate := &domain.ShiftAssignment{
				ShiftDate:  day,
				StartTime:  tmpl.StartTime,
				EndTime:    tmpl.EndTime,
				TemplateID: &tmpl.ID,
				Status:     domain.AssignmentPending,
			}

			driver := p.pickDriver(pool, candidate, workload, perDay)
			if driver == nil {
				continue
			}

			candidate.DriverID = &driver.ID
			if iv, ok := toInterval(candidate); ok {
				workload[driver.ID] += iv.end - iv.start
			}
			perDay[dayKey(driver.ID, day)]++

			pool = append(pool, candidate)
			proposals = append(proposals, candidate)
		}
	}

	return proposals, nil
}

func (p *Planner) covered(pool []*domain.ShiftAssignment, templateID uuid.UUID, day domain.Date) bool {
	for _, a := range pool {
		if a.TemplateID != nil && *a.TemplateID == templateID && a.ShiftDate.Equal(day) {
			return true
		}
	}
	return false
}

func (p *Planner) pickDriver(pool []*domain.ShiftAssignment, candidate *domain.ShiftAssignment, workload map[uuid.UUID]int, perDay map[string]int) *domain.Driver {
	ranked := append([]*domain.Driver{}, p.drivers...)
	sort.Slice(ranked, func(i, j int) bool {
		wi, wj := workload[ranked[i].ID], workload[ranked[j].ID]
		if wi != wj {
			return wi < wj
		}
		return ranked[i].ID.String() < ranked[j].ID.String()
	})

	for _, d := range ranked {
		if perDay[dayKey(d.ID, candidate.ShiftDate)] >= p.params.MaxShiftsPerDriverPerDay {
			continue
		}
		trial := *candidate
		trial.DriverID = &d.ID
		if HasConflict(pool, &trial) {
			continue
		}
		return d
	}
	return nil
}

func dayKey(driverID uuid.UUID, date domain.Date) string {
	return driverID.String() + "_" + date.String()
}
