package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/model"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/queue"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/repository"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/storage"
)

// PageSize is the fixed number of entries returned per listing page.
const PageSize = 20

// UploadInput is the body of POST /files. Data is base64 content and is
// required for every type except folder.
type UploadInput struct {
	Name     string         `json:"name" validate:"required"`
	Type     model.FileType `json:"type" validate:"required,oneof=folder file image"`
	ParentID model.ParentID `json:"parentId"`
	IsPublic bool           `json:"isPublic"`
	Data     string         `json:"data" validate:"required_unless=Type folder"`
}

// Content is an open stream of file bytes ready to be served.
type Content struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// FileService implements the file tree: uploads, lookups, listings,
// visibility and content delivery.
type FileService interface {
	Upload(ctx context.Context, userID string, in UploadInput) (*model.File, error)
	Get(ctx context.Context, userID, id string) (*model.File, error)
	List(ctx context.Context, userID, parentID string, page int) ([]model.File, error)
	SetVisibility(ctx context.Context, userID, id string, isPublic bool) (*model.File, error)
	// Download opens the content of a file, or of one of its thumbnails
	// when size is set. userID is empty for anonymous callers.
	Download(ctx context.Context, userID, id, size string) (*Content, error)
}

type fileService struct {
	files    repository.FileRepository
	store    storage.Storage
	jobs     queue.Enqueuer
	validate *validator.Validate
	log      *slog.Logger
}

// NewFileService constructs a FileService. jobs receives thumbnail requests
// for uploaded images.
func NewFileService(files repository.FileRepository, store storage.Storage, jobs queue.Enqueuer, log *slog.Logger) FileService {
	if log == nil {
		log = slog.Default()
	}
	return &fileService{
		files:    files,
		store:    store,
		jobs:     jobs,
		validate: newValidator(),
		log:      log,
	}
}

var uploadFieldErrors = map[string]error{
	"Name": ErrMissingName,
	"Type": ErrMissingType,
	"Data": ErrMissingData,
}

func (s *fileService) Upload(ctx context.Context, userID string, in UploadInput) (*model.File, error) {
	if err := firstInvalid(s.validate.Struct(in), uploadFieldErrors); err != nil {
		return nil, err
	}

	parentID := model.RootParentID
	if !in.ParentID.IsRoot() {
		parent, err := s.findParent(ctx, userID, string(in.ParentID))
		if err != nil {
			return nil, err
		}
		// the stored id is canonical even when the caller's spelling is not
		parentID = parent.ID
	}

	f := &model.File{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     in.Name,
		Type:     in.Type,
		IsPublic: in.IsPublic,
		ParentID: model.ParentID(parentID),
	}

	if !f.Type.HasContent() {
		created, err := s.files.Create(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("create folder: %w", err)
		}
		return created, nil
	}

	data, err := decodeBase64(in.Data)
	if err != nil {
		return nil, ErrInvalidData
	}

	path := s.store.Locate(uuid.NewString())
	if _, err := s.store.Put(ctx, path, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: ContentTypeOf(f.Name),
	}); err != nil {
		return nil, fmt.Errorf("store content: %w", err)
	}
	f.LocalPath = path

	created, err := s.files.Create(ctx, f)
	if err != nil {
		if derr := s.store.Delete(context.WithoutCancel(ctx), path); derr != nil {
			s.log.ErrorContext(ctx, "rollback stored content", "path", path, "error", derr)
		}
		return nil, fmt.Errorf("create file: %w", err)
	}

	if created.Type == model.FileTypeImage {
		if err := s.jobs.EnqueueThumbnail(ctx, userID, created.ID); err != nil {
			s.log.WarnContext(ctx, "enqueue thumbnail job", "file_id", created.ID, "error", err)
		}
	}
	return created, nil
}

func (s *fileService) findParent(ctx context.Context, userID, parentID string) (*model.File, error) {
	if uuid.Validate(parentID) != nil {
		return nil, ErrParentNotFound
	}
	parent, err := s.files.FindOwned(ctx, parentID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, fmt.Errorf("find parent: %w", err)
	}
	if parent.Type != model.FileTypeFolder {
		return nil, ErrParentNotFolder
	}
	return parent, nil
}

func (s *fileService) Get(ctx context.Context, userID, id string) (*model.File, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotFound
	}
	f, err := s.files.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return f, nil
}

func (s *fileService) List(ctx context.Context, userID, parentID string, page int) ([]model.File, error) {
	if parentID == "" {
		parentID = model.RootParentID
	}
	if page < 0 {
		page = 0
	}
	files, err := s.files.ListByParent(ctx, userID, parentID, repository.PageQuery{
		Limit:  PageSize,
		Offset: page * PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

func (s *fileService) SetVisibility(ctx context.Context, userID, id string, isPublic bool) (*model.File, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotFound
	}
	f, err := s.files.SetPublic(ctx, id, userID, isPublic)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("set visibility: %w", err)
	}
	return f, nil
}

func (s *fileService) Download(ctx context.Context, userID, id, size string) (*Content, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotFound
	}
	f, err := s.files.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}

	if f.Type == model.FileTypeFolder {
		return nil, ErrFolderNoContent
	}
	// private content is reported missing to anyone but its owner
	if !f.IsPublic && (userID == "" || userID != f.UserID) {
		return nil, ErrNotFound
	}

	path, err := contentPath(f, size)
	if err != nil {
		return nil, err
	}

	body, info, err := s.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open content: %w", err)
	}
	return &Content{Body: body, ContentType: ContentTypeOf(f.Name), Size: info.Size}, nil
}

// contentPath selects the original bytes or a thumbnail variant.
func contentPath(f *model.File, size string) (string, error) {
	if size == "" {
		return f.LocalPath, nil
	}
	width, err := strconv.Atoi(size)
	if err != nil {
		return "", ErrInvalidSize
	}
	for _, w := range model.ThumbnailWidths {
		if w == width {
			return f.ThumbnailPath(width), nil
		}
	}
	return "", ErrInvalidSize
}

// ContentTypeOf derives a MIME type from the file name's extension,
// falling back to text/plain.
func ContentTypeOf(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "text/plain"
}

func decodeBase64(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
