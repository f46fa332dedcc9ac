package middleware

import (
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger writes one structured record per HTTP request with the fields
// request_id, method, path, status and latency (milliseconds).
// Errors returned by handlers are rendered through the app's ErrorHandler
// first so the logged status matches the response.
func Logger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := resolveError(c, c.Next())

		rid := RequestIDFrom(c)
		status := c.Response().StatusCode()
		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}

		log.LogAttrs(c.UserContext(), level, "http_request",
			slog.String("request_id", rid),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		)
		return err
	}
}

// LoggerWithWriter is Logger backed by a JSON handler on w, with
// timestamps in loc under the "ts" key.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.Local
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.String("ts", a.Value.Time().In(loc).Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return Logger(slog.New(h))
}

// resolveError hands a handler error to the app's ErrorHandler so outer
// middleware observe the final status code.
func resolveError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
	return nil
}
