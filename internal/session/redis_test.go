package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/redis"
)

// newTestStore connects to the Redis at REDIS_ADDR and skips without one.
func newTestStore(t *testing.T) *RedisStore {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.New(addr, os.Getenv("REDIS_PASSWORD"), 0)
	require.NoError(t, client.Ping(context.Background()))
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, time.Minute)
}

func TestRedisStore_Lifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	userID, err := store.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Resolve(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_UnknownSession(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Resolve(context.Background(), "does-not-exist")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
