package postgres

import (
	"context"
	"database/sql"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/model"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/repository"
)

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

const fileColumns = `id, user_id, name, type, is_public, parent_id, local_path`

func scanFile(row rowScanner) (*model.File, error) {
	var (
		f         model.File
		parentID  string
		localPath sql.NullString
	)
	if err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Type, &f.IsPublic, &parentID, &localPath); err != nil {
		return nil, translate(err)
	}
	f.ParentID = model.ParentID(parentID)
	f.LocalPath = localPath.String
	return &f, nil
}

// Create inserts a new file row and returns the stored record.
func (r *FilePostgres) Create(ctx context.Context, f *model.File) (*model.File, error) {
	const q = `
		INSERT INTO files (id, user_id, name, type, is_public, parent_id, local_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + fileColumns
	row := r.db.QueryRowContext(ctx, q,
		f.ID,
		f.UserID,
		f.Name,
		string(f.Type),
		f.IsPublic,
		string(f.ParentID),
		nullString(f.LocalPath),
	)
	return scanFile(row)
}

// FindByID fetches a file by id without an ownership check.
func (r *FilePostgres) FindByID(ctx context.Context, id string) (*model.File, error) {
	const q = `SELECT ` + fileColumns + ` FROM files WHERE id = $1`
	return scanFile(r.db.QueryRowContext(ctx, q, id))
}

// FindOwned fetches a file by id scoped to its owner.
func (r *FilePostgres) FindOwned(ctx context.Context, id, userID string) (*model.File, error) {
	const q = `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND user_id = $2`
	return scanFile(r.db.QueryRowContext(ctx, q, id, userID))
}

// ListByParent returns one page of the user's files under parentID.
func (r *FilePostgres) ListByParent(ctx context.Context, userID, parentID string, pq repository.PageQuery) ([]model.File, error) {
	const q = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE user_id = $1 AND parent_id = $2
		ORDER BY seq
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.QueryContext(ctx, q, userID, parentID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SetPublic flips visibility and returns the post-update row.
func (r *FilePostgres) SetPublic(ctx context.Context, id, userID string, isPublic bool) (*model.File, error) {
	const q = `
		UPDATE files SET is_public = $1
		WHERE id = $2 AND user_id = $3
		RETURNING ` + fileColumns
	return scanFile(r.db.QueryRowContext(ctx, q, isPublic, id, userID))
}

// Count returns the total number of file records.
func (r *FilePostgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
