package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRegistry stores users as JSON values in a single hash keyed by username.
type RedisRegistry struct {
	client *redis.Client
	key    string
}

func NewRedisRegistry(client *redis.Client, key string) *RedisRegistry {
	return &RedisRegistry{client: client, key: key}
}

type redisUser struct {
	Password  string `json:"password"`
	CreatedAt int64  `json:"created_at"`
}

func (r *RedisRegistry) Exists(ctx context.Context, username string) (bool, error) {
	return r.client.HExists(ctx, r.key, username).Result()
}

func (r *RedisRegistry) Append(ctx context.Context, u User) error {
	payload, err := json.Marshal(redisUser{Password: u.Password, CreatedAt: u.CreatedAt.Unix()})
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	created, err := r.client.HSetNX(ctx, r.key, u.Username, payload).Result()
	if err != nil {
		return err
	}
	if !created {
		return ErrAlreadyExists
	}
	return nil
}

func (r *RedisRegistry) Get(ctx context.Context, username string) (User, error) {
	raw, err := r.client.HGet(ctx, r.key, username).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	var ru redisUser
	if err := json.Unmarshal(raw, &ru); err != nil {
		return User{}, fmt.Errorf("decode user %q: %w", username, err)
	}
	return User{
		Username:  username,
		Password:  ru.Password,
		CreatedAt: time.Unix(ru.CreatedAt, 0).UTC(),
	}, nil
}

func (r *RedisRegistry) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
