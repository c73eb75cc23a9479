// ABOUTME: Draft slot for the one in-progress session, backed by a local
// ABOUTME: badger key-value store so a crash or restart never loses input.
package draft

import (
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/liftlog-dev/liftlog/internal/models"
)

var draftKey = []byte("session-draft")

// Store holds at most one unsaved session draft.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the draft store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open draft store: %w", err)
	}
	return &Store{db: db}, nil
}

// Save writes the draft, replacing any previous one. There is only one
// slot: starting a new session overwrites an abandoned draft.
func (s *Store) Save(d *models.SessionDraft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(draftKey, data)
	})
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Load returns the stored draft, or nil when the slot is empty.
func (s *Store) Load() (*models.SessionDraft, error) {
	var d *models.SessionDraft
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(draftKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			d = &models.SessionDraft{}
			return json.Unmarshal(val, d)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	return d, nil
}

// Clear empties the slot. Clearing an already-empty slot is a no-op.
func (s *Store) Clear() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(draftKey)
	})
	if err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}
