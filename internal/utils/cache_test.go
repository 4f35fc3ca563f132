package utils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipIfNoRedis skips the test if Redis is not configured
func skipIfNoRedis(t *testing.T) *redis.Client {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping Redis tests: TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestListCache_DisabledIsNoop(t *testing.T) {
	ctx := context.Background()

	for name, c := range map[string]*ListCache{"nil": nil, "no client": NewListCache(nil, time.Minute)} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, c.Enabled())

			key, err := c.Key(ctx, "artists", "limit=5")
			require.NoError(t, err)
			assert.Empty(t, key)

			var dest []string
			found, err := c.Get(ctx, key, &dest)
			require.NoError(t, err)
			assert.False(t, found)

			assert.NoError(t, c.Set(ctx, key, []string{"x"}))
			assert.NoError(t, c.Invalidate(ctx, "artists"))
		})
	}
}

func TestListCache_InvalidateChangesKey(t *testing.T) {
	rdb := skipIfNoRedis(t)
	ctx := context.Background()
	c := NewListCache(rdb, time.Minute)
	c.prefix = "music-test:" + time.Now().Format("150405.000000") + ":"

	key, err := c.Key(ctx, "artists", "limit=5")
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, key, []string{"Miles Davis"}))

	var got []string
	found, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Miles Davis"}, got)

	require.NoError(t, c.Invalidate(ctx, "artists"))

	newKey, err := c.Key(ctx, "artists", "limit=5")
	require.NoError(t, err)
	assert.NotEqual(t, key, newKey)

	found, err = c.Get(ctx, newKey, &got)
	require.NoError(t, err)
	assert.False(t, found)
}
