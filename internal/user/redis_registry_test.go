package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Skipping test: cannot reach test redis: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisRegistry_AppendAndGet(t *testing.T) {
	client := setupTestRedis(t)
	key := fmt.Sprintf("bookshop:test:users:%d", time.Now().UnixNano())
	t.Cleanup(func() { client.Del(context.Background(), key) })

	repo := NewRedisRegistry(client, key)
	service := NewService(repo, nil)
	ctx := context.Background()

	_, err := service.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = service.Register(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	n, err := client.HLen(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	u, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "pw1", u.Password)

	_, err = repo.Get(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}
