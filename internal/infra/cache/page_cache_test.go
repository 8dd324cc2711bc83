package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests need a Redis server; REDIS_ADDR overrides the default address.
func setupTestClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available at %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client
}

type cachedProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func TestRedisPageCache_SetGetRevalidate(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()
	prefix := "test:" + uuid.NewString() + ":"
	cache := NewRedisPageCache(client, prefix, time.Minute)

	var miss cachedProduct
	hit, err := cache.Get(ctx, "/products/1", &miss)
	require.NoError(t, err)
	assert.False(t, hit)

	want := cachedProduct{ID: "1", Name: "Lamp", Price: 25}
	require.NoError(t, cache.Set(ctx, "/products/1", want))
	require.NoError(t, cache.Set(ctx, "/products/2", cachedProduct{ID: "2"}))

	var got cachedProduct
	hit, err = cache.Get(ctx, "/products/1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)

	ttl, err := client.TTL(ctx, prefix+"/products/1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, cache.Revalidate(ctx, "/products/1", "/products/2", "/cart"))

	hit, err = cache.Get(ctx, "/products/1", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisPageCache_Defaults(t *testing.T) {
	cache := NewRedisPageCache(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "", 0).(*redisPageCache)

	assert.Equal(t, defaultTTL, cache.ttl)
	assert.Equal(t, "storefront:page:/products/abc", cache.key("/products/abc"))
	assert.NoError(t, cache.Revalidate(context.Background()))
}

func TestNoopPageCache(t *testing.T) {
	cache := noopPageCache{}
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "/products/1", cachedProduct{ID: "1"}))

	var got cachedProduct
	hit, err := cache.Get(ctx, "/products/1", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, cache.Revalidate(ctx, "/products/1"))
}
