package domain

import (
	"time"

	"github.com/google/uuid"
)

type ShiftType string

const (
	ShiftTypeDriver    ShiftType = "driver"
	ShiftTypeWarehouse ShiftType = "warehouse"
	ShiftTypeOffice    ShiftType = "office"
)

// ShiftTemplate is a reusable named work window that dispatchers
// instantiate into concrete assignments. Times are HH:mm:ss strings; a
// template whose window crosses midnight must say so explicitly via
// SpansMidnight rather than carrying an inverted pair.
type ShiftTemplate struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ShiftType     ShiftType `json:"shiftType"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	SpansMidnight bool      `json:"spansMidnight"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	Version       int32     `json:"-"`
}

// Duplicate clones every field except identity and marks the name.
func (t *ShiftTemplate) Duplicate() *ShiftTemplate {
	return &ShiftTemplate{
		Name:          t.Name + " (Copy)",
		ShiftType:     t.ShiftType,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		SpansMidnight: t.SpansMidnight,
		Description:   t.Description,
	}
}
