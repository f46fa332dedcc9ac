package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("REDIS_HOST", "redis.local")
	t.Setenv("SESSION_TTL_SEC", "60")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Storage.MinIO.UseSSL)
	assert.Equal(t, "redis.local:6379", cfg.Redis.Addr())
	assert.Equal(t, time.Minute, cfg.Session.TTL)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_NAME", "FOLDER_PATH", "SESSION_BACKEND", "STORAGE_BACKEND",
		"QUEUE_NAME", "QUEUE_REDIS_HOST", "REDIS_HOST", "SESSION_TTL_SEC", "APP_ENV",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, "files_manager", cfg.Database.Name)
	assert.Equal(t, "/tmp/files_manager", cfg.Storage.FolderPath)
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "fileQueue", cfg.Queue.Name)
	assert.Equal(t, 1, cfg.Queue.Concurrency)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadQueueInheritsRedis(t *testing.T) {
	t.Setenv("REDIS_HOST", "shared")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("QUEUE_REDIS_HOST", "")

	cfg := Load()

	assert.Equal(t, "shared:6380", cfg.Queue.Redis.Addr())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
