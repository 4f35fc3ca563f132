package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // redis.Nil detection
	"strings"       // Key assembly
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal(val, dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// ListCache caches list responses per resource. Each resource has a
// generation counter that is part of every key; a write bumps the counter,
// so stale pages are never read again and simply expire.
// A nil *ListCache or one without a client is a no-op.
type ListCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewListCache creates a cache backed by rdb. rdb may be nil to disable caching.
func NewListCache(rdb *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &ListCache{rdb: rdb, ttl: ttl, prefix: "music:"}
}

// Enabled reports whether a Redis client is configured
func (c *ListCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *ListCache) generationKey(resource string) string {
	return c.prefix + "gen:" + resource
}

// Key builds the cache key for a resource page under its current generation
func (c *ListCache) Key(ctx context.Context, resource string, parts ...string) (string, error) {
	if !c.Enabled() {
		return "", nil
	}
	gen, err := c.rdb.Get(ctx, c.generationKey(resource)).Result()
	if errors.Is(err, redis.Nil) {
		gen = "0" // No write seen yet
	} else if err != nil {
		return "", err
	}
	return c.prefix + resource + ":g" + gen + ":" + strings.Join(parts, ":"), nil
}

// Get loads a cached page into dest
func (c *ListCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() || key == "" {
		return false, nil
	}
	return GetCache(ctx, c.rdb, key, dest)
}

// Set stores a page under key
func (c *ListCache) Set(ctx context.Context, key string, value any) error {
	if !c.Enabled() || key == "" {
		return nil
	}
	return SetCache(ctx, c.rdb, key, value, c.ttl)
}

// Invalidate bumps the generation of every named resource
func (c *ListCache) Invalidate(ctx context.Context, resources ...string) error {
	if !c.Enabled() || len(resources) == 0 {
		return nil
	}
	_, err := c.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, r := range resources {
			pipe.Incr(ctx, c.generationKey(r))
		}
		return nil
	})
	return err
}
