package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

func TestWeekAnchor(t *testing.T) {
	h := &Handler{}

	t.Run("explicit anchor", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/shifts/week?anchor=2025-03-12", nil)
		window, err := h.weekAnchor(r)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-09", window.Start.String())
		assert.Equal(t, "2025-03-15", window.End.String())
	})

	t.Run("missing anchor defaults to the current week", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/shifts/week", nil)
		window, err := h.weekAnchor(r)
		require.NoError(t, err)
		assert.True(t, window.Contains(domain.Today()))
		assert.Equal(t, 0, window.Start.Weekday())
	})

	t.Run("malformed anchor", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/shifts/week?anchor=tomorrow", nil)
		_, err := h.weekAnchor(r)
		assert.Error(t, err)
	})
}

func TestShiftChipFallbacks(t *testing.T) {
	a := &domain.ShiftAssignment{
		ShiftDate: domain.NewDate(2025, time.March, 10),
		StartTime: "08:00:00",
		EndTime:   "16:00:00",
	}

	chip := &ShiftChip{
		ShiftAssignment: a,
		Label:           a.Label(nil),
		DriverInitials:  "DR",
	}

	assert.Equal(t, "Shift", chip.Label)
	assert.Equal(t, "DR", chip.DriverInitials)
	assert.Empty(t, chip.DriverName)
}
