package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/config"
)

// RedisStore keeps sessions as plain string keys with SET EX.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedis connects to the configured Redis server. Connectivity is not
// verified here; use Ping for liveness.
func NewRedis(cfg config.RedisConfig) *RedisStore {
	return NewRedisFromClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}))
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(c *redis.Client) *RedisStore {
	return &RedisStore{client: c}
}

func (s *RedisStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	v, err := s.client.Get(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get session: %w", err)
	}
	return v, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
