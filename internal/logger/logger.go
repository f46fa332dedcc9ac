package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/config"
)

// New builds the process logger.
// Development: text format. Production: JSON format.
// When a Sentry DSN is configured, error records are also sent to Sentry.
func New(isDev bool, cfg config.LogConfig) *slog.Logger {
	return newLogger(os.Stdout, isDev, cfg)
}

// Init builds the process logger and installs it as the slog default.
func Init(isDev bool, cfg config.LogConfig) *slog.Logger {
	l := New(isDev, cfg)
	slog.SetDefault(l)
	return l
}

func newLogger(w io.Writer, isDev bool, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handlers []slog.Handler
	if isDev {
		handlers = append(handlers, slog.NewTextHandler(w, opts))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(w, opts))
	}

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0])
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog level.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Flush waits for buffered Sentry events. It is a no-op without a DSN.
func Flush() {
	sentry.Flush(2 * time.Second)
}

// Discard returns a logger that drops every record. Useful in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
