package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "taskflow/internal/domain/user"
)

func setupTestCache(t *testing.T) (UserCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisUserCache(client, 5*time.Minute, zaptest.NewLogger(t)), mr
}

func TestRedisUserCache_SetGet(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	u := &domain.User{ID: 7, Name: "Ana", Email: "ana@x.com", PasswordHash: "secret-hash"}
	require.NoError(t, c.Set(ctx, u))

	got, err := c.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@x.com", got.Email)
	// The hash is excluded from the JSON encoding, so it never survives a
	// round trip through the cache.
	assert.Empty(t, got.PasswordHash)
}

func TestRedisUserCache_NoHashInRedis(t *testing.T) {
	c, mr := setupTestCache(t)

	u := &domain.User{ID: 7, Name: "Ana", Email: "ana@x.com", PasswordHash: "secret-hash"}
	require.NoError(t, c.Set(context.Background(), u))

	raw, err := mr.Get("user:7")
	require.NoError(t, err)
	assert.NotContains(t, raw, "secret-hash")
}

func TestRedisUserCache_GetMiss(t *testing.T) {
	c, _ := setupTestCache(t)

	got, err := c.Get(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisUserCache_Delete(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &domain.User{ID: 7, Name: "Ana"}))
	require.NoError(t, c.Delete(ctx, 7))

	got, err := c.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisUserCache_TTL(t *testing.T) {
	c, mr := setupTestCache(t)

	require.NoError(t, c.Set(context.Background(), &domain.User{ID: 7, Name: "Ana"}))

	mr.FastForward(6 * time.Minute)

	got, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisUserCache_SetNil(t *testing.T) {
	c, _ := setupTestCache(t)

	assert.Error(t, c.Set(context.Background(), nil))
}
