package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/model"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/repository"
)

// RegisterInput is the body of POST /users.
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserService manages accounts.
type UserService interface {
	// Register creates an account. The password is stored as a bcrypt hash.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	// Me returns the account behind a resolved session.
	Me(ctx context.Context, userID string) (*model.User, error)
}

type userService struct {
	users    repository.UserRepository
	validate *validator.Validate
	hashCost int
}

// NewUserService constructs a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users, validate: newValidator(), hashCost: bcrypt.DefaultCost}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := firstInvalid(s.validate.Struct(in), map[string]error{
		"Email":    ErrMissingEmail,
		"Password": ErrMissingPassword,
	}); err != nil {
		return nil, err
	}

	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrAlreadyExist
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, &model.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// lost a concurrent registration race on the unique index
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyExist
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*model.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
