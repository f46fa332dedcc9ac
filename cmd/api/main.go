package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/docs"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/config"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/database"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/database/migration"
	handlers "github.com/Paintballskaguy/atlas-atlas-files-manager/internal/http/handler"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/http/middleware"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/logger"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/otel"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/queue"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/repository/postgres"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/session"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/storage"
)

// @title Files Manager API
// @version 1.0
// @description Users, sessions, a per-user file tree, and content delivery with image thumbnails.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.Init(cfg.IsDevelopment(), cfg.Log)
	defer logger.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log, otel.DefaultServiceName)
	if err != nil {
		log.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	sessions, err := session.New(cfg)
	if err != nil {
		log.Error("failed to initialize session store", "error", err)
		os.Exit(1)
	}
	defer sessions.Close()

	contentStore, err := storage.New(cfg.Storage)
	if err != nil {
		log.Error("failed to initialize content storage", "error", err)
		os.Exit(1)
	}

	jobs := queue.NewClient(cfg.Queue)
	defer jobs.Close()

	userRepo := postgres.NewUserPostgres(db)
	fileRepo := postgres.NewFilePostgres(db)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Error("failed to register http metrics", "error", err)
		os.Exit(1)
	}

	svc := handlers.Services{
		Auth:     service.NewAuthService(userRepo, sessions, cfg.Session.TTL),
		Users:    service.NewUserService(userRepo),
		Files:    service.NewFileService(fileRepo, contentStore, jobs, log),
		Stats:    service.NewStatsService(userRepo, fileRepo, database.Pinger(db), sessions.Ping, log),
		Gatherer: reg,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: !cfg.IsDevelopment(),
		BodyLimit:             64 * 1024 * 1024,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())

	handlers.RegisterRoutes(app, svc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down http server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("http shutdown", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Info("http server listening", "addr", addr)
	if err := app.Listen(addr); err != nil {
		log.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
