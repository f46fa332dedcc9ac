package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
)

const (
	// TokenHeader carries the session token issued by /connect.
	TokenHeader = "X-Token"
	// UserIDLocalKey stores the authenticated user id in Fiber locals.
	UserIDLocalKey = "user_id"
	// TokenLocalKey stores the raw session token in Fiber locals.
	TokenLocalKey = "session_token"
)

// SessionResolver maps a token to a user id, returning service.ErrUnauthorized
// for unknown tokens.
type SessionResolver func(ctx context.Context, token string) (string, error)

// RequireSession rejects requests without a live session.
func RequireSession(resolve SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(TokenHeader)
		userID, err := resolve(c.UserContext(), token)
		if err != nil {
			return err
		}
		c.Locals(UserIDLocalKey, userID)
		c.Locals(TokenLocalKey, token)
		return c.Next()
	}
}

// OptionalSession resolves the session when one is presented and lets
// anonymous or unknown tokens through. Store failures still abort.
func OptionalSession(resolve SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(TokenHeader)
		if token == "" {
			return c.Next()
		}
		userID, err := resolve(c.UserContext(), token)
		switch {
		case err == nil:
			c.Locals(UserIDLocalKey, userID)
			c.Locals(TokenLocalKey, token)
		case !errors.Is(err, service.ErrUnauthorized):
			return err
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDLocalKey).(string)
	return id
}

// SessionToken returns the token the request authenticated with.
func SessionToken(c *fiber.Ctx) string {
	tok, _ := c.Locals(TokenLocalKey).(string)
	return tok
}
