package middleware

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisWindowPrefix = "ratelimit:"

// RedisWindowStore shares fixed windows across processes. The first hit of a window
// sets the key's expiry, so the window starts at that hit.
type RedisWindowStore struct {
	client *redis.Client
}

func NewRedisWindowStore(client *redis.Client) *RedisWindowStore {
	return &RedisWindowStore{client: client}
}

func (s *RedisWindowStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	k := redisWindowPrefix + key

	count, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, 0, err
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, k, window).Err(); err != nil {
			return 0, 0, err
		}
		return count, window, nil
	}

	ttl, err := s.client.PTTL(ctx, k).Result()
	if err != nil {
		return 0, 0, err
	}
	if ttl <= 0 {
		// Lost expiry (crash between INCR and PEXPIRE); restart the window clock.
		if err := s.client.PExpire(ctx, k, window).Err(); err != nil {
			return 0, 0, err
		}
		ttl = window
	}
	return count, ttl, nil
}
