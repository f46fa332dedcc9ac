package worker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/model"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/queue"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/repository"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/storage"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/thumbnail"
)

var (
	ErrMissingFileID = errors.New("Missing fileId")
	ErrMissingUserID = errors.New("Missing userId")
	ErrFileNotFound  = errors.New("File not found")
)

var tracer = otel.Tracer("github.com/Paintballskaguy/atlas-atlas-files-manager/internal/worker")

// ThumbnailProcessor renders the fixed thumbnail widths of an uploaded image
// next to its original content.
type ThumbnailProcessor struct {
	files    repository.FileRepository
	store    storage.Storage
	renderer thumbnail.Renderer
	log      *slog.Logger
	rendered *prometheus.CounterVec
}

// NewThumbnailProcessor wires the processor and registers its counter on reg.
func NewThumbnailProcessor(files repository.FileRepository, store storage.Storage, renderer thumbnail.Renderer, log *slog.Logger, reg prometheus.Registerer) (*ThumbnailProcessor, error) {
	if log == nil {
		log = slog.Default()
	}
	p := &ThumbnailProcessor{
		files:    files,
		store:    store,
		renderer: renderer,
		log:      log,
		rendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "files_manager_thumbnails_total",
				Help: "Thumbnails rendered, by width and outcome.",
			},
			[]string{"width", "status"},
		),
	}
	if err := reg.Register(p.rendered); err != nil {
		return nil, err
	}
	return p, nil
}

// ProcessTask implements asynq.Handler. Malformed jobs and missing files are
// not retried.
func (p *ThumbnailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	ctx, span := tracer.Start(ctx, "thumbnail.process", trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()

	payload, err := queue.ParseThumbnailPayload(t)
	if err != nil {
		return fail(span, fmt.Errorf("%w: %w", err, asynq.SkipRetry))
	}
	span.SetAttributes(
		attribute.String("file.id", payload.FileID),
		attribute.String("user.id", payload.UserID),
	)
	if err := p.Generate(ctx, payload); err != nil {
		if errors.Is(err, ErrMissingFileID) || errors.Is(err, ErrMissingUserID) || errors.Is(err, ErrFileNotFound) {
			return fail(span, fmt.Errorf("%w: %w", err, asynq.SkipRetry))
		}
		return fail(span, err)
	}
	return nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// Generate writes every width in model.ThumbnailWidths. A failed width is
// logged and counted; it neither stops the others nor fails the job.
func (p *ThumbnailProcessor) Generate(ctx context.Context, job queue.ThumbnailPayload) error {
	switch {
	case job.FileID == "":
		return ErrMissingFileID
	case job.UserID == "":
		return ErrMissingUserID
	case uuid.Validate(job.FileID) != nil, uuid.Validate(job.UserID) != nil:
		return ErrFileNotFound
	}

	f, err := p.files.FindOwned(ctx, job.FileID, job.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFileNotFound
		}
		return fmt.Errorf("find file: %w", err)
	}
	if f.Type != model.FileTypeImage {
		p.log.InfoContext(ctx, "skip thumbnails for non-image", "file_id", f.ID, "type", f.Type)
		return nil
	}

	src, err := p.readOriginal(ctx, f.LocalPath)
	if err != nil {
		return err
	}

	for _, width := range model.ThumbnailWidths {
		if err := p.renderOne(ctx, f, src, width); err != nil {
			p.rendered.WithLabelValues(strconv.Itoa(width), "error").Inc()
			p.log.ErrorContext(ctx, "render thumbnail", "file_id", f.ID, "width", width, "error", err)
			continue
		}
		p.rendered.WithLabelValues(strconv.Itoa(width), "ok").Inc()
	}
	return nil
}

func (p *ThumbnailProcessor) readOriginal(ctx context.Context, path string) ([]byte, error) {
	rc, _, err := p.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("open original: %w", err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read original: %w", err)
	}
	return b, nil
}

func (p *ThumbnailProcessor) renderOne(ctx context.Context, f *model.File, src []byte, width int) error {
	out, err := p.renderer.Render(src, width)
	if err != nil {
		return err
	}
	path := f.ThumbnailPath(width)
	if _, err := p.store.Put(ctx, path, bytes.NewReader(out), storage.PutObjectOptions{
		Size:        int64(len(out)),
		ContentType: service.ContentTypeOf(f.Name),
	}); err != nil {
		return fmt.Errorf("store %dpx thumbnail: %w", width, err)
	}
	return nil
}
