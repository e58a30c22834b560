package utils

import (
	"fmt"
	"time"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

const timeLayout = "15:04:05"

// ValidateShiftTemplateTimes checks the HH:mm:ss format of both times and
// requires the end to follow the start unless the template explicitly
// spans midnight, in which case the end must land strictly earlier in the
// day than the start.
func ValidateShiftTemplateTimes(t *domain.ShiftTemplate) error {
	start, err := time.Parse(timeLayout, t.StartTime)
	if err != nil {
		return fmt.Errorf("start time %q is not a valid HH:mm:ss value", t.StartTime)
	}
	end, err := time.Parse(timeLayout, t.EndTime)
	if err != nil {
		return fmt.Errorf("end time %q is not a valid HH:mm:ss value", t.EndTime)
	}

	if t.SpansMidnight {
		if !end.Before(start) {
			return fmt.Errorf("a template that spans midnight must end earlier in the day than it starts")
		}
		return nil
	}

	if !end.After(start) {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

// ValidateAssignmentTimes applies the same format check to an assignment's
// copied times. Inverted pairs are allowed here: they denote overnight
// shifts instantiated from spans-midnight templates.
func ValidateAssignmentTimes(a *domain.ShiftAssignment) error {
	if _, err := time.Parse(timeLayout, a.StartTime); err != nil {
		return fmt.Errorf("start time %q is not a valid HH:mm:ss value", a.StartTime)
	}
	if _, err := time.Parse(timeLayout, a.EndTime); err != nil {
		return fmt.Errorf("end time %q is not a valid HH:mm:ss value", a.EndTime)
	}
	return nil
}
