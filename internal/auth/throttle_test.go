package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// memThrottleStore backs the throttle with a plain map for tests.
type memThrottleStore struct {
	counts map[string]int64
	ttls   map[string]time.Duration
}

func newMemThrottleStore() *memThrottleStore {
	return &memThrottleStore{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (s *memThrottleStore) Get(_ context.Context, key string) *redis.StringCmd {
	count, ok := s.counts[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(strconv.FormatInt(count, 10), nil)
}

func (s *memThrottleStore) Incr(_ context.Context, key string) *redis.IntCmd {
	s.counts[key]++
	return redis.NewIntResult(s.counts[key], nil)
}

func (s *memThrottleStore) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	s.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (s *memThrottleStore) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(s.counts, key)
		delete(s.ttls, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestLoginThrottleBlocksAfterMaxFailures(t *testing.T) {
	store := newMemThrottleStore()
	throttle := NewLoginThrottle(store, 3, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, throttle.RecordFailure(ctx, "alice"))
		blocked, err := throttle.Blocked(ctx, "alice")
		require.NoError(t, err)
		require.False(t, blocked, "attempt %d must not block yet", i+1)
	}

	require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	blocked, err := throttle.Blocked(ctx, "alice")
	require.NoError(t, err)
	require.True(t, blocked)

	// the cooldown window starts with the first failure
	require.Equal(t, 15*time.Minute, store.ttls[throttleKeyPrefix+"alice"])

	// counters are per username
	blocked, err = throttle.Blocked(ctx, "bob")
	require.NoError(t, err)
	require.False(t, blocked)
}

func TestLoginThrottleResetClearsCounter(t *testing.T) {
	store := newMemThrottleStore()
	throttle := NewLoginThrottle(store, 1, time.Minute)
	ctx := context.Background()

	require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	blocked, err := throttle.Blocked(ctx, "alice")
	require.NoError(t, err)
	require.True(t, blocked)

	require.NoError(t, throttle.Reset(ctx, "alice"))
	blocked, err = throttle.Blocked(ctx, "alice")
	require.NoError(t, err)
	require.False(t, blocked)
}

func TestLoginThrottleDisabledWithoutClient(t *testing.T) {
	throttle := NewLoginThrottle(nil, 10, 15*time.Minute)
	ctx := context.Background()

	blocked, err := throttle.Blocked(ctx, "alice")
	require.NoError(t, err)
	require.False(t, blocked)

	require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	require.NoError(t, throttle.Reset(ctx, "alice"))
}

func TestLoginThrottleDisabledWithZeroLimit(t *testing.T) {
	store := newMemThrottleStore()
	throttle := NewLoginThrottle(store, 0, 15*time.Minute)

	require.NoError(t, throttle.RecordFailure(context.Background(), "alice"))
	blocked, err := throttle.Blocked(context.Background(), "alice")
	require.NoError(t, err)
	require.False(t, blocked)
	require.Empty(t, store.counts)
}
