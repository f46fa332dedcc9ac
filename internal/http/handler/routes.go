package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/http/middleware"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
)

// Services bundles the dependencies of the HTTP layer.
type Services struct {
	Auth  service.AuthService
	Users service.UserService
	Files service.FileService
	Stats service.StatsService
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc Services) {
	requireSession := middleware.RequireSession(svc.Auth.Resolve)
	optionalSession := middleware.OptionalSession(svc.Auth.Resolve)

	app.Get("/healthz", LivenessProbe())
	if svc.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(svc.Gatherer, promhttp.HandlerOpts{})))
	}

	app.Get("/status", GetStatus(svc.Stats))
	app.Get("/stats", GetStats(svc.Stats))

	app.Post("/users", CreateUser(svc.Users))
	app.Get("/connect", Connect(svc.Auth))
	app.Get("/disconnect", Disconnect(svc.Auth))
	app.Get("/users/me", requireSession, GetMe(svc.Users))

	app.Post("/files", requireSession, UploadFile(svc.Files))
	app.Get("/files", requireSession, ListFiles(svc.Files))
	app.Get("/files/:id", requireSession, GetFile(svc.Files))
	app.Put("/files/:id/publish", requireSession, PublishFile(svc.Files))
	app.Put("/files/:id/unpublish", requireSession, UnpublishFile(svc.Files))
	app.Get("/files/:id/data", optionalSession, GetFileData(svc.Files))
}
