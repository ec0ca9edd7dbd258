package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares fixed-window counters across server instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	counter := "ratelimit:" + key
	n, err := r.client.Incr(ctx, counter).Result()
	if err != nil {
		return 0, err
	}
	// First hit opens the window; the TTL closes it for every instance.
	if n == 1 {
		if err := r.client.Expire(ctx, counter, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Close releases the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
