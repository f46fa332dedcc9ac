package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(RequestIDFrom(c))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	for name, id := range map[string]string{
		"replaces oversized request id":   strings.Repeat("a", 129),
		"replaces request id with a space": "abc def",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, id)

			resp, _ := app.Test(req)

			got := resp.Header.Get(RequestIDHeader)
			assert.NotEqual(t, id, got)
			assert.NoError(t, uuid.Validate(got))
		})
	}
}

func TestRequestIDFrom_OutsideMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("[" + RequestIDFrom(c) + "]")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	buf := new(bytes.Buffer)
	buf.ReadFrom(resp.Body)
	assert.Equal(t, "[]", buf.String())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()

	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, time.UTC))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
}

func TestLogger_RecordsErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var logData map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
	assert.Equal(t, float64(fiber.StatusNotFound), logData["status"])
}

func resolver(sessions map[string]string, fail error) SessionResolver {
	return func(_ context.Context, token string) (string, error) {
		if fail != nil {
			return "", fail
		}
		if id, ok := sessions[token]; ok {
			return id, nil
		}
		return "", service.ErrUnauthorized
	}
}

func sessionApp(mw fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, service.ErrUnauthorized) {
				return c.SendStatus(fiber.StatusUnauthorized)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Get("/whoami", mw, func(c *fiber.Ctx) error {
		return c.SendString(UserID(c) + "|" + SessionToken(c))
	})
	return app
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		fail       error
		wantStatus int
		wantBody   string
	}{
		{name: "live token", token: "tok", wantStatus: fiber.StatusOK, wantBody: "user-1|tok"},
		{name: "no token", wantStatus: fiber.StatusUnauthorized},
		{name: "unknown token", token: "nope", wantStatus: fiber.StatusUnauthorized},
		{name: "store failure", token: "tok", fail: errors.New("redis down"), wantStatus: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := sessionApp(RequireSession(resolver(map[string]string{"tok": "user-1"}, tt.fail)))
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.token != "" {
				req.Header.Set(TokenHeader, tt.token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantBody != "" {
				buf := new(bytes.Buffer)
				buf.ReadFrom(resp.Body)
				assert.Equal(t, tt.wantBody, buf.String())
			}
		})
	}
}

func TestOptionalSession(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		fail       error
		wantStatus int
		wantBody   string
	}{
		{name: "live token", token: "tok", wantStatus: fiber.StatusOK, wantBody: "user-1|tok"},
		{name: "anonymous", wantStatus: fiber.StatusOK, wantBody: "|"},
		{name: "unknown token is anonymous", token: "nope", wantStatus: fiber.StatusOK, wantBody: "|"},
		{name: "store failure", token: "tok", fail: errors.New("redis down"), wantStatus: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := sessionApp(OptionalSession(resolver(map[string]string{"tok": "user-1"}, tt.fail)))
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.token != "" {
				req.Header.Set(TokenHeader, tt.token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantBody != "" {
				buf := new(bytes.Buffer)
				buf.ReadFrom(resp.Body)
				assert.Equal(t, tt.wantBody, buf.String())
			}
		})
	}
}
