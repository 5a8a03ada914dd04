// Package badgerdb persists one Session per chat, keyed by chat id.
// This is the only state the client keeps between restarts: the bearer
// token and the identity it was issued for.
package badgerdb

import (
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/moshdev2213/letsbook/internal/domain"
)

type SessionStore struct {
	db *badger.DB
}

func Open(path string) (*SessionStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return &SessionStore{db: db}, nil
}

func (s *SessionStore) Close() error {
	return s.db.Close()
}

func key(chatID int64) []byte {
	return []byte(fmt.Sprintf("session/%d", chatID))
}

func (s *SessionStore) Save(chatID int64, sess *domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(chatID), data)
	})
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Get returns nil without error when the chat has no session.
func (s *SessionStore) Get(chatID int64) (*domain.Session, error) {
	var sess domain.Session
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(chatID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sess)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return &sess, nil
}

// Delete drops the chat's session. Deleting a missing session is not an
// error.
func (s *SessionStore) Delete(chatID int64) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(chatID))
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
