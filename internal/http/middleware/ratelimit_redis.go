package middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps rate-limit windows in Redis so the limit is shared across
// replicas. Entries carry a TTL matching the window, so Redis expires them on
// its own and Sweep is a no-op. Get-then-Set through the Limiter is not
// atomic across processes; for advisory throttling a slightly under-counted
// window during concurrent writes is acceptable.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store on an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "ratelimit:"}
}

func (s *RedisStore) Get(ctx context.Context, key string) (WindowEntry, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return WindowEntry{}, false, nil
	}
	if err != nil {
		return WindowEntry{}, false, fmt.Errorf("ratelimit: redis get: %w", err)
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return WindowEntry{}, false, fmt.Errorf("ratelimit: corrupt counter for %s: %w", key, err)
	}

	ttl, err := s.client.PTTL(ctx, s.prefix+key).Result()
	if err != nil {
		return WindowEntry{}, false, fmt.Errorf("ratelimit: redis pttl: %w", err)
	}
	if ttl <= 0 {
		// Key expired between GET and PTTL; treat as absent.
		return WindowEntry{}, false, nil
	}

	return WindowEntry{Count: count, ExpiresAt: time.Now().Add(ttl)}, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, entry WindowEntry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Millisecond
	}
	if err := s.client.Set(ctx, s.prefix+key, entry.Count, ttl).Err(); err != nil {
		return fmt.Errorf("ratelimit: redis set: %w", err)
	}
	return nil
}

// Sweep is a no-op; Redis TTLs reclaim expired windows.
func (s *RedisStore) Sweep(context.Context, time.Time) error {
	return nil
}
