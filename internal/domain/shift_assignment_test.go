package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShiftAssignmentLabel(t *testing.T) {
	templateID := uuid.New()
	danglingID := uuid.New()
	templates := map[uuid.UUID]*ShiftTemplate{
		templateID: {ID: templateID, Name: "Morning Route"},
	}

	tests := []struct {
		name       string
		templateID *uuid.UUID
		want       string
	}{
		{"resolvable reference", &templateID, "Morning Route"},
		{"dangling reference after template delete", &danglingID, "Shift"},
		{"no reference at all", nil, "Shift"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &ShiftAssignment{TemplateID: tt.templateID}
			assert.Equal(t, tt.want, a.Label(templates))
		})
	}
}

func TestShiftAssignmentMovedTo(t *testing.T) {
	driverID := uuid.New()
	original := ShiftAssignment{
		ID:        uuid.New(),
		DriverID:  &driverID,
		ShiftDate: NewDate(2025, time.March, 10),
		StartTime: "08:00:00",
		EndTime:   "16:00:00",
		Status:    AssignmentScheduled,
	}

	moved := original.MovedTo(NewDate(2025, time.March, 11))
	assert.Equal(t, "2025-03-11", moved.ShiftDate.String())
	assert.Equal(t, "2025-03-10", original.ShiftDate.String(), "receiver is untouched")
	assert.Equal(t, original.StartTime, moved.StartTime)
	assert.Equal(t, original.EndTime, moved.EndTime)
	assert.Equal(t, original.ID, moved.ID)

	// Moving onto the current date is a no-op value-wise.
	same := original.MovedTo(original.ShiftDate)
	assert.Equal(t, original, same)
}
