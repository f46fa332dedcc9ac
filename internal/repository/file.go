package repository

import (
	"context"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/model"
)

// FileRepository defines persistence operations for file metadata.
type FileRepository interface {
	// Create inserts a new file record and returns the stored row.
	Create(ctx context.Context, f *model.File) (*model.File, error)

	// FindByID returns a file regardless of owner, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.File, error)

	// FindOwned returns the file only if it belongs to userID, or ErrNotFound.
	FindOwned(ctx context.Context, id, userID string) (*model.File, error)

	// ListByParent returns the user's files under parentID in insertion order.
	ListByParent(ctx context.Context, userID, parentID string, pq PageQuery) ([]model.File, error)

	// SetPublic updates visibility of an owned file in a single statement and
	// returns the updated row, or ErrNotFound.
	SetPublic(ctx context.Context, id, userID string, isPublic bool) (*model.File, error)

	// Count returns the number of file records.
	Count(ctx context.Context) (int, error)
}
