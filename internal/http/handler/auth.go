package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/http/middleware"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Connect exchanges Basic credentials for a session token.
//
// @Summary  Sign in
// @Tags     auth
// @Produce  json
// @Param    Authorization header string true "Basic base64(email:password)"
// @Success  200 {object} tokenResponse
// @Failure  401 {object} errorPayload
// @Router   /connect [get]
func Connect(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := auth.Connect(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tokenResponse{Token: token})
	}
}

// Disconnect revokes the session named by X-Token.
//
// @Summary  Sign out
// @Tags     auth
// @Param    X-Token header string true "session token"
// @Success  204
// @Failure  401 {object} errorPayload
// @Router   /disconnect [get]
func Disconnect(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.Disconnect(c.UserContext(), c.Get(middleware.TokenHeader)); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
