package session

import (
	"context"
	"errors"
	"time"
)

// KeyPrefix namespaces session keys in the key-value store.
const KeyPrefix = "auth_"

// DefaultTTL is the absolute lifetime of a session.
const DefaultTTL = 24 * time.Hour

// ErrNotFound is returned when a token has no live session.
var ErrNotFound = errors.New("session not found")

// Store maps opaque tokens to user ids. Expiry is enforced by the store.
type Store interface {
	// Set binds token to userID for ttl.
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	// Get returns the bound user id or ErrNotFound.
	Get(ctx context.Context, token string) (string, error)
	// Delete removes the session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
	Close() error
}

func key(token string) string {
	return KeyPrefix + token
}
