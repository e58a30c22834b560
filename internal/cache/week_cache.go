package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

// Store is the subset of redis operations the week cache needs. Tests
// substitute an in-memory fake.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	DelPrefix(ctx context.Context, prefix string) error
}

// ErrMiss is returned when the requested week is not cached.
var ErrMiss = errors.New("week cache miss")

// WeekCache holds the denormalized assignment list of recently viewed week
// windows. Every write to templates or assignments invalidates the touched
// window, so readers are at most one refetch behind.
type WeekCache struct {
	store Store
	ttl   time.Duration
}

func NewWeekCache(store Store, ttl time.Duration) *WeekCache {
	return &WeekCache{store: store, ttl: ttl}
}

func (c *WeekCache) Get(ctx context.Context, window domain.WeekWindow) ([]*domain.ShiftAssignment, error) {
	raw, err := c.store.Get(ctx, window.CacheKey())
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}

	assignments := []*domain.ShiftAssignment{}
	if err := json.Unmarshal([]byte(raw), &assignments); err != nil {
		// A corrupt entry behaves like a miss; the next fill overwrites it.
		return nil, ErrMiss
	}
	return assignments, nil
}

func (c *WeekCache) Set(ctx context.Context, window domain.WeekWindow, assignments []*domain.ShiftAssignment) error {
	raw, err := json.Marshal(assignments)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, window.CacheKey(), string(raw), c.ttl)
}

func (c *WeekCache) Invalidate(ctx context.Context, windows ...domain.WeekWindow) error {
	for _, w := range windows {
		if err := c.store.Del(ctx, w.CacheKey()); err != nil {
			return err
		}
	}
	return nil
}

// InvalidateAll drops every cached week. Template deletes clear dangling
// references in assignments of any week, so no single window can be
// pinpointed.
func (c *WeekCache) InvalidateAll(ctx context.Context) error {
	return c.store.DelPrefix(ctx, "shift_week_")
}

// RedisStore adapts a redis client to the Store interface.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

func (s *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisStore) DelPrefix(ctx context.Context, prefix string) error {
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
