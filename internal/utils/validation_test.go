package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

func TestValidateShiftTemplateTimes(t *testing.T) {
	tests := []struct {
		name          string
		start, end    string
		spansMidnight bool
		wantErr       bool
	}{
		{"valid day shift", "08:00:00", "16:00:00", false, false},
		{"end equals start", "08:00:00", "08:00:00", false, true},
		{"end before start without the flag", "16:00:00", "08:00:00", false, true},
		{"valid overnight shift", "22:00:00", "06:00:00", true, false},
		{"flagged but not inverted", "08:00:00", "16:00:00", true, true},
		{"flagged with equal times", "08:00:00", "08:00:00", true, true},
		{"bad start format", "8:00", "16:00:00", false, true},
		{"bad end format", "08:00:00", "sixteen", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := &domain.ShiftTemplate{
				StartTime:     tt.start,
				EndTime:       tt.end,
				SpansMidnight: tt.spansMidnight,
			}
			err := ValidateShiftTemplateTimes(tmpl)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAssignmentTimes(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    bool
	}{
		{"valid day shift", "08:00:00", "16:00:00", false},
		{"inverted pair is an overnight shift", "22:00:00", "06:00:00", false},
		{"bad start format", "8am", "16:00:00", true},
		{"bad end format", "08:00:00", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &domain.ShiftAssignment{StartTime: tt.start, EndTime: tt.end}
			err := ValidateAssignmentTimes(a)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	assert.Len(t, password, 12)
	assert.NotEqual(t, password, GenerateRandomPassword(12))
}

func TestGenerateRandomOTP(t *testing.T) {
	otp := GenerateRandomOTP()
	assert.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestGenerateRandomShiftTemplate(t *testing.T) {
	for i := 0; i < 50; i++ {
		tmpl := GenerateRandomShiftTemplate()
		assert.NoError(t, ValidateShiftTemplateTimes(tmpl), "seeded template %s-%s must validate", tmpl.StartTime, tmpl.EndTime)
	}
}
