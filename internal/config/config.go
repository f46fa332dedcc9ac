package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// RedisConfig holds connection settings for a Redis server.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// SessionConfig selects and configures the session store.
type SessionConfig struct {
	// Backend is either "redis" or "badger".
	Backend    string
	BadgerPath string
	TTL        time.Duration
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// StorageConfig selects where uploaded content is written.
type StorageConfig struct {
	// Backend is either "local" or "minio".
	Backend    string
	FolderPath string
	MinIO      MinIOConfig
}

// QueueConfig holds the thumbnail job queue settings.
type QueueConfig struct {
	Redis       RedisConfig
	Name        string
	Concurrency int
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level     string
	SentryDSN string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env               string
	Port              string
	WorkerMetricsPort string
	Database          DatabaseConfig
	Redis             RedisConfig
	Session           SessionConfig
	Storage           StorageConfig
	Queue             QueueConfig
	Log               LogConfig
}

// IsDevelopment reports whether APP_ENV selects development mode.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	redis := RedisConfig{
		Host:     getEnv("REDIS_HOST", "127.0.0.1"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	return &AppConfig{
		Env:               getEnv("APP_ENV", "production"),
		Port:              getEnv("PORT", "5001"),
		WorkerMetricsPort: getEnv("WORKER_METRICS_PORT", "9101"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", "postgres"),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", "files_manager"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Redis: redis,
		Session: SessionConfig{
			Backend:    getEnv("SESSION_BACKEND", "redis"),
			BadgerPath: getEnv("SESSION_BADGER_PATH", "/tmp/files_manager_sessions"),
			TTL:        time.Duration(getEnvInt("SESSION_TTL_SEC", 24*60*60)) * time.Second,
		},
		Storage: StorageConfig{
			Backend:    getEnv("STORAGE_BACKEND", "local"),
			FolderPath: getEnv("FOLDER_PATH", "/tmp/files_manager"),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
		},
		Queue: QueueConfig{
			Redis: RedisConfig{
				Host:     getEnv("QUEUE_REDIS_HOST", redis.Host),
				Port:     getEnv("QUEUE_REDIS_PORT", redis.Port),
				Password: getEnv("QUEUE_REDIS_PASSWORD", redis.Password),
				DB:       getEnvInt("QUEUE_REDIS_DB", redis.DB),
			},
			Name:        getEnv("QUEUE_NAME", "fileQueue"),
			Concurrency: getEnvInt("WORKER_CONCURRENCY", 1),
		},
		Log: LogConfig{
			Level:     getEnv("LOG_LEVEL", "info"),
			SentryDSN: getEnv("SENTRY_DSN", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
