package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShiftTemplateDuplicate(t *testing.T) {
	source := &ShiftTemplate{
		ID:            uuid.New(),
		Name:          "Morning Route",
		ShiftType:     ShiftTypeDriver,
		StartTime:     "08:00:00",
		EndTime:       "16:00:00",
		Description:   "North side pickups",
		SpansMidnight: false,
	}

	copy := source.Duplicate()

	assert.Equal(t, "Morning Route (Copy)", copy.Name)
	assert.Equal(t, uuid.Nil, copy.ID, "the copy gets its own identity on insert")
	assert.Equal(t, source.ShiftType, copy.ShiftType)
	assert.Equal(t, source.StartTime, copy.StartTime)
	assert.Equal(t, source.EndTime, copy.EndTime)
	assert.Equal(t, source.Description, copy.Description)
	assert.Equal(t, source.SpansMidnight, copy.SpansMidnight)
}

func TestShiftTemplateDuplicateOfCopy(t *testing.T) {
	source := &ShiftTemplate{Name: "Night Watch (Copy)"}
	assert.Equal(t, "Night Watch (Copy) (Copy)", source.Duplicate().Name)
}
