package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps sessions in an embedded Badger database using per-entry
// TTLs. It serves single-node deployments that run without Redis; it cannot
// be shared between processes.
type BadgerStore struct {
	db *badger.DB
}

var _ Store = (*BadgerStore)(nil)

// NewBadger opens (or creates) a Badger database at path.
// An empty path opens an in-memory database.
func NewBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger session store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Set(_ context.Context, token, userID string, ttl time.Duration) error {
	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key(token)), []byte(userID)).WithTTL(ttl)
		return txn.SetEntry(e)
	})
}

func (s *BadgerStore) Get(_ context.Context, token string) (string, error) {
	var userID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key(token)))
		if err != nil {
			return err
		}
		v, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		userID = string(v)
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("badger get session: %w", err)
	}
	return userID, nil
}

func (s *BadgerStore) Delete(_ context.Context, token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key(token)))
	})
}

func (s *BadgerStore) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger session store is closed")
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
