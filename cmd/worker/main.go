package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/config"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/database"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/logger"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/otel"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/queue"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/repository/postgres"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/storage"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/thumbnail"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.Init(cfg.IsDevelopment(), cfg.Log).With("component", "worker")
	defer logger.Flush()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, log, otel.DefaultServiceName+"-worker")
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

	contentStore, err := storage.New(cfg.Storage)
	if err != nil {
		log.Error("failed to initialize content storage", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	processor, err := worker.NewThumbnailProcessor(
		postgres.NewFilePostgres(db),
		contentStore,
		thumbnail.ImagingRenderer{},
		log,
		reg,
	)
	if err != nil {
		log.Error("failed to build thumbnail processor", "error", err)
		os.Exit(1)
	}

	metricsSrv := &http.Server{
		Addr:              ":" + cfg.WorkerMetricsPort,
		Handler:           otelhttp.NewHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), "metrics"),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "error", err)
		}
	}()
	defer metricsSrv.Close()

	srv := asynq.NewServer(queue.RedisOpt(cfg.Queue.Redis), asynq.Config{
		Concurrency: cfg.Queue.Concurrency,
		Queues:      map[string]int{cfg.Queue.Name: 1},
		Logger:      newAsynqLogger(log),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.ErrorContext(ctx, "job failed", "type", task.Type(), "payload", string(task.Payload()), "error", err)
		}),
	})

	mux := asynq.NewServeMux()
	mux.Handle(queue.TypeThumbnail, processor)

	log.Info("worker started", "queue", cfg.Queue.Name, "concurrency", cfg.Queue.Concurrency)
	// Run blocks until SIGTERM or SIGINT and drains in-flight jobs.
	if err := srv.Run(mux); err != nil {
		log.Error("worker stopped", "error", err)
		os.Exit(1)
	}
}
