package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
)

// GetStatus reports whether the session store and the database are reachable.
//
// @Summary  Backing store liveness
// @Tags     app
// @Produce  json
// @Success  200 {object} service.Status
// @Router   /status [get]
func GetStatus(stats service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		return c.JSON(stats.Status(ctx))
	}
}

// GetStats returns user and file counts.
//
// @Summary  Record counts
// @Tags     app
// @Produce  json
// @Success  200 {object} service.Stats
// @Router   /stats [get]
func GetStats(stats service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(stats.Stats(c.UserContext()))
	}
}

// LivenessProbe answers 200 as long as the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
