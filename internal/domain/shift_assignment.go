package domain

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentScheduled AssignmentStatus = "scheduled"
	AssignmentConflict  AssignmentStatus = "conflict"
)

// ShiftAssignment is one driver's work on one calendar date. It is an
// independent record: times are copied from the template at assignment
// time and the template reference may dangle after a template delete.
// Status is descriptive only; no transition is enforced.
type ShiftAssignment struct {
	ID         uuid.UUID        `json:"id"`
	DriverID   *uuid.UUID       `json:"driverID"`
	ShiftDate  Date             `json:"shiftDate"`
	StartTime  string           `json:"startTime"`
	EndTime    string           `json:"endTime"`
	TemplateID *uuid.UUID       `json:"templateID"`
	Status     AssignmentStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	Version    int32            `json:"-"`
}

// Label resolves the display name for the grid chip, falling back to the
// generic "Shift" when the template reference is absent or dangling.
func (a *ShiftAssignment) Label(templates map[uuid.UUID]*ShiftTemplate) string {
	if a.TemplateID != nil {
		if t, ok := templates[*a.TemplateID]; ok {
			return t.Name
		}
	}
	return "Shift"
}

// MovedTo returns a copy re-targeted to date. Only the shift date changes;
// a move to the current date yields a value equal to the receiver.
func (a ShiftAssignment) MovedTo(date Date) ShiftAssignment {
	a.ShiftDate = date
	return a
}
