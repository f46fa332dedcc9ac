package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/http/middleware"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
)

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CreateUser registers an account.
//
// @Summary  Register
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body service.RegisterInput true "credentials"
// @Success  201 {object} userResponse
// @Failure  400 {object} errorPayload
// @Router   /users [post]
func CreateUser(users service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RegisterInput
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return writeError(c, fiber.StatusBadRequest, "Invalid body")
			}
		}
		u, err := users.Register(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(userResponse{ID: u.ID, Email: u.Email})
	}
}

// GetMe returns the authenticated account.
//
// @Summary  Current user
// @Tags     users
// @Produce  json
// @Param    X-Token header string true "session token"
// @Success  200 {object} userResponse
// @Failure  401 {object} errorPayload
// @Router   /users/me [get]
func GetMe(users service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := users.Me(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(userResponse{ID: u.ID, Email: u.Email})
	}
}
