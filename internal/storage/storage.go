package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/config"
)

// Package storage holds the content store: raw uploaded bytes and derived
// thumbnails, addressed by the path recorded in file metadata.

// ErrObjectNotFound is returned by Get when nothing is stored at the path.
var ErrObjectNotFound = errors.New("object not found")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, -1 otherwise.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the content store used by uploads, downloads and the thumbnail worker.
type Storage interface {
	// Locate maps a generated object name to the path persisted as localPath.
	Locate(name string) string
	// Put writes the reader's content at path.
	Put(ctx context.Context, path string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get opens the content at path. Returns ErrObjectNotFound if absent.
	Get(ctx context.Context, path string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes the content at path. Missing content is not an error.
	Delete(ctx context.Context, path string) error
}

// New builds the backend selected by cfg.Backend.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocal(cfg.FolderPath)
	case "minio":
		return NewMinIO(cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
