package repository

import (
	"context"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/model"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns ErrDuplicate if the email is taken.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByEmail returns ErrNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID returns ErrNotFound when no user has that id.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int, error)
}
