package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

type fakeStore struct {
	entries map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string]string)}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.entries[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (s *fakeStore) Set(_ context.Context, key string, value string, _ time.Duration) error {
	s.entries[key] = value
	return nil
}

func (s *fakeStore) Del(_ context.Context, key string) error {
	delete(s.entries, key)
	return nil
}

func (s *fakeStore) DelPrefix(_ context.Context, prefix string) error {
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
		}
	}
	return nil
}

func testAssignments() []*domain.ShiftAssignment {
	driverID := uuid.New()
	return []*domain.ShiftAssignment{
		{
			ID:        uuid.New(),
			DriverID:  &driverID,
			ShiftDate: domain.NewDate(2025, time.March, 10),
			StartTime: "08:00:00",
			EndTime:   "16:00:00",
			Status:    domain.AssignmentScheduled,
		},
	}
}

func TestWeekCacheMissThenFill(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c := NewWeekCache(store, 5*time.Minute)
	window := domain.WeekOf(domain.NewDate(2025, time.March, 12))

	_, err := c.Get(ctx, window)
	require.ErrorIs(t, err, ErrMiss)

	want := testAssignments()
	require.NoError(t, c.Set(ctx, window, want))

	got, err := c.Get(ctx, window)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, "2025-03-10", got[0].ShiftDate.String())
	assert.Equal(t, want[0].StartTime, got[0].StartTime)
}

func TestWeekCacheEmptyWeekIsCacheable(t *testing.T) {
	ctx := context.Background()
	c := NewWeekCache(newFakeStore(), 5*time.Minute)
	window := domain.WeekOf(domain.NewDate(2025, time.March, 12))

	require.NoError(t, c.Set(ctx, window, []*domain.ShiftAssignment{}))

	got, err := c.Get(ctx, window)
	require.NoError(t, err)
	assert.Empty(t, got, "an empty week is a hit, not a miss")
}

func TestWeekCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c := NewWeekCache(store, 5*time.Minute)

	thisWeek := domain.WeekOf(domain.NewDate(2025, time.March, 12))
	nextWeek := domain.WeekOf(domain.NewDate(2025, time.March, 19))

	require.NoError(t, c.Set(ctx, thisWeek, testAssignments()))
	require.NoError(t, c.Set(ctx, nextWeek, testAssignments()))

	require.NoError(t, c.Invalidate(ctx, thisWeek))

	_, err := c.Get(ctx, thisWeek)
	assert.ErrorIs(t, err, ErrMiss)

	_, err = c.Get(ctx, nextWeek)
	assert.NoError(t, err, "untouched windows survive")
}

func TestWeekCacheInvalidateAll(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c := NewWeekCache(store, 5*time.Minute)

	require.NoError(t, c.Set(ctx, domain.WeekOf(domain.NewDate(2025, time.March, 12)), testAssignments()))
	require.NoError(t, c.Set(ctx, domain.WeekOf(domain.NewDate(2025, time.March, 19)), testAssignments()))
	store.entries["otp_someone_reset_password"] = "123456"

	require.NoError(t, c.InvalidateAll(ctx))

	for key := range store.entries {
		assert.False(t, strings.HasPrefix(key, "shift_week_"), "week entry %s survived", key)
	}
	assert.Contains(t, store.entries, "otp_someone_reset_password", "unrelated keys survive")
}

func TestWeekCacheCorruptEntryIsAMiss(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c := NewWeekCache(store, 5*time.Minute)
	window := domain.WeekOf(domain.NewDate(2025, time.March, 12))

	store.entries[window.CacheKey()] = "{not json"

	_, err := c.Get(ctx, window)
	assert.ErrorIs(t, err, ErrMiss)
}
