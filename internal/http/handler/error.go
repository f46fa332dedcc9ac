package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/http/middleware"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	Error string `json:"error"`
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// classify maps an error to its HTTP status and caller-safe message.
// Anything unrecognised is an internal error and its text is not exposed.
func classify(err error) (int, string) {
	var bad *service.BadRequestError
	var fe *fiber.Error
	switch {
	case errors.As(err, &bad):
		return fiber.StatusBadRequest, bad.Error()
	case errors.Is(err, service.ErrUnauthorized):
		return fiber.StatusUnauthorized, service.ErrUnauthorized.Error()
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound, service.ErrNotFound.Error()
	case errors.As(err, &fe):
		// router and framework errors are folded into the public status set
		switch {
		case fe.Code == fiber.StatusNotFound, fe.Code == fiber.StatusMethodNotAllowed:
			return fiber.StatusNotFound, service.ErrNotFound.Error()
		case fe.Code < fiber.StatusInternalServerError:
			return fiber.StatusBadRequest, fe.Message
		}
		return fiber.StatusInternalServerError, "Internal server error"
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

func writeServiceError(c *fiber.Ctx, err error) error {
	status, msg := classify(err)
	if status >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "request failed",
			"request_id", middleware.RequestIDFrom(c),
			"path", c.Path(),
			"error", err,
		)
	}
	return writeError(c, status, msg)
}

// ErrorHandler returns a Fiber global error handler that renders errors
// escaping handlers and middleware in the standard shape.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return writeServiceError(c, err)
	}
}
