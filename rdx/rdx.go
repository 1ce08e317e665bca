package rdx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the Redis connection used for price-observation lookups. The
// list view prefetches matches for every visible item name, so repeated
// lookups for the same name are served from here instead of the record store.
type Cache struct {
	Conn *redis.Client
}

// Connect parses the Redis URL, applies pool settings, and verifies
// connectivity with a ping.
func Connect(redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	conn := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := conn.Ping(pingCtx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Cache{Conn: conn}, nil
}

// Get returns the cached value for key, with found=false on a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.Conn.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores a value under key with the given TTL.
func (c *Cache) Set(ctx context.Context, key, val string, ttl time.Duration) error {
	return c.Conn.Set(ctx, key, val, ttl).Err()
}

// Del drops keys, invalidating any cached lookups they back.
func (c *Cache) Del(ctx context.Context, keys ...string) error {
	return c.Conn.Del(ctx, keys...).Err()
}

// Close shuts down the connection pool.
func (c *Cache) Close() error {
	return c.Conn.Close()
}
