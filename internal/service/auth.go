package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/repository"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/session"
)

// AuthService issues, resolves and revokes session tokens.
type AuthService interface {
	// Connect checks Basic credentials and returns a fresh session token.
	Connect(ctx context.Context, authorization string) (string, error)
	// Disconnect revokes a live session.
	Disconnect(ctx context.Context, token string) error
	// Resolve returns the user id bound to token.
	Resolve(ctx context.Context, token string) (string, error)
}

type authService struct {
	users    repository.UserRepository
	sessions session.Store
	ttl      time.Duration
	newToken func() string
}

// NewAuthService constructs an AuthService. A non-positive ttl uses session.DefaultTTL.
func NewAuthService(users repository.UserRepository, sessions session.Store, ttl time.Duration) AuthService {
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	return &authService{users: users, sessions: sessions, ttl: ttl, newToken: uuid.NewString}
}

func (s *authService) Connect(ctx context.Context, authorization string) (string, error) {
	email, password, ok := parseBasicAuth(authorization)
	if !ok {
		return "", ErrUnauthorized
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	token := s.newToken()
	if err := s.sessions.Set(ctx, token, u.ID, s.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *authService) Disconnect(ctx context.Context, token string) error {
	if _, err := s.Resolve(ctx, token); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *authService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return userID, nil
}

// parseBasicAuth decodes "Basic base64(email:password)". The password may
// itself contain colons.
func parseBasicAuth(header string) (email, password string, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(raw), ":")
	if !ok || email == "" || password == "" {
		return "", "", false
	}
	return email, password, true
}
