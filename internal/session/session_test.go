package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/config"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { s.Close() })
	return s, mr
}

func TestRedisStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	require.NoError(t, s.Set(ctx, "tok", "user-1", DefaultTTL))

	assert.True(t, mr.Exists("auth_tok"), "sessions are stored under the auth_ prefix")
	assert.Equal(t, DefaultTTL, mr.TTL("auth_tok"))

	userID, err := s.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, s.Delete(ctx, "tok"))

	_, err = s.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	require.NoError(t, s.Set(ctx, "tok", "user-1", DefaultTTL))

	mr.FastForward(DefaultTTL - time.Second)
	userID, err := s.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	mr.FastForward(2 * time.Second)
	_, err = s.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_PingAndFailure(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	assert.NoError(t, s.Ping(ctx))

	mr.Close()

	assert.Error(t, s.Ping(ctx))
	_, err := s.Get(ctx, "tok")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound, "a store outage must not look like a missing session")
}

func TestBadgerStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, err := NewBadger("")
	require.NoError(t, err)
	defer s.Close()

	assert.NoError(t, s.Ping(ctx))

	require.NoError(t, s.Set(ctx, "tok", "user-1", time.Hour))

	userID, err := s.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, s.Delete(ctx, "tok"))

	_, err = s.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get(ctx, "never-issued")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBadgerStore_PingAfterClose(t *testing.T) {
	s, err := NewBadger("")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Error(t, s.Ping(context.Background()))
}

func TestNew_SelectsBackend(t *testing.T) {
	cfg := &config.AppConfig{Redis: config.RedisConfig{Host: "127.0.0.1", Port: "6379"}}

	cfg.Session.Backend = "redis"
	s, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)
	s.Close()

	cfg.Session.Backend = "badger"
	cfg.Session.BadgerPath = t.TempDir()
	s, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &BadgerStore{}, s)
	s.Close()

	cfg.Session.Backend = "memcached"
	_, err = New(cfg)
	assert.Error(t, err)
}
