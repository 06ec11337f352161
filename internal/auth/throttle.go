package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleKeyPrefix = "login_attempts:"

// ThrottleStore is the slice of the Redis command set the throttle needs.
// A *redis.Client satisfies it.
type ThrottleStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// LoginThrottle counts failed login attempts per username in Redis and
// blocks further attempts for a cooldown window once the limit is reached.
type LoginThrottle struct {
	client   ThrottleStore
	max      int
	cooldown time.Duration
}

// NewLoginThrottle constructs a throttle. A nil client disables throttling.
func NewLoginThrottle(client ThrottleStore, max int, cooldown time.Duration) *LoginThrottle {
	return &LoginThrottle{client: client, max: max, cooldown: cooldown}
}

// Blocked reports whether the username has exhausted its attempts.
func (t *LoginThrottle) Blocked(ctx context.Context, username string) (bool, error) {
	if t.client == nil || t.max <= 0 {
		return false, nil
	}
	count, err := t.client.Get(ctx, throttleKeyPrefix+username).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= t.max, nil
}

// RecordFailure increments the failure counter, starting the cooldown window
// on the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	if t.client == nil || t.max <= 0 {
		return nil
	}
	key := throttleKeyPrefix + username
	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return t.client.Expire(ctx, key, t.cooldown).Err()
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	if t.client == nil || t.max <= 0 {
		return nil
	}
	return t.client.Del(ctx, throttleKeyPrefix+username).Err()
}
