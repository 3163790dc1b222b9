package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jrokz2315/SecureID/internal/cache"
	"github.com/Jrokz2315/SecureID/internal/redis"
)

type entry struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

func testCaches(t *testing.T) map[string]cache.Cache {
	t.Helper()
	instance := miniredis.RunT(t)
	client, err := redis.Open(context.Background(), "redis://"+instance.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return map[string]cache.Cache{
		"memory": cache.NewMemoryCache(),
		"redis":  cache.NewRedisCache(client),
	}
}

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, c := range testCaches(t) {
		t.Run(name, func(t *testing.T) {
			stored := entry{Code: "482913", CreatedAt: time.Now().UTC().Truncate(time.Second)}
			require.NoError(t, c.Set(ctx, "k1", stored, cache.ForEver))

			var got entry
			require.True(t, c.Get(ctx, "k1", &got))
			assert.Equal(t, stored.Code, got.Code)
			assert.True(t, stored.CreatedAt.Equal(got.CreatedAt))
			assert.True(t, c.Exists(ctx, "k1"))

			require.NoError(t, c.Delete(ctx, "k1"))
			assert.False(t, c.Get(ctx, "k1", &got))
			assert.False(t, c.Exists(ctx, "k1"))
		})
	}
}

func TestGetMissingKey(t *testing.T) {
	ctx := context.Background()
	for name, c := range testCaches(t) {
		t.Run(name, func(t *testing.T) {
			var got entry
			assert.False(t, c.Get(ctx, "missing", &got))
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	for name, c := range testCaches(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, c.Set(ctx, "k1", entry{Code: "111111"}, cache.ForEver))
			require.NoError(t, c.Set(ctx, "k1", entry{Code: "222222"}, cache.ForEver))

			var got entry
			require.True(t, c.Get(ctx, "k1", &got))
			assert.Equal(t, "222222", got.Code)
		})
	}
}

func TestForEverEntriesDoNotExpire(t *testing.T) {
	ctx := context.Background()
	instance := miniredis.RunT(t)
	client, err := redis.Open(ctx, "redis://"+instance.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	c := cache.NewRedisCache(client)

	require.NoError(t, c.Set(ctx, "k1", entry{Code: "482913"}, cache.ForEver))
	assert.Equal(t, time.Duration(0), instance.TTL("k1"))

	instance.FastForward(90 * time.Minute)

	var got entry
	require.True(t, c.Get(ctx, "k1", &got))
	assert.Equal(t, "482913", got.Code)
	assert.True(t, c.Exists(ctx, "k1"))
}

func TestSetWithTTL(t *testing.T) {
	ctx := context.Background()
	for name, c := range testCaches(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, c.Set(ctx, "probe", "ok", time.Minute))
			var got string
			assert.True(t, c.Get(ctx, "probe", &got))
			assert.Equal(t, "ok", got)
		})
	}
}
