package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "rajubill/internal/errors"
)

// Store is a flat string-to-string key-value store persisted as a single
// JSON file. It mirrors the layout the application has always used:
// "bills" holds the JSON-encoded bill sequence, "whatsappNumber" the share
// destination, "isAuthenticated" the session flag.
//
// Every write rewrites the whole file. A missing or corrupt file reads as
// an empty store; only writes can fail.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// GetItem returns the value for key, or "" if the key is absent or the
// store cannot be read.
func (s *Store) GetItem(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[key]
}

// SetItem sets key to value and persists the whole store.
func (s *Store) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	items[key] = value
	return s.persist(items)
}

// RemoveItem deletes key and persists. Removing an absent key is a no-op.
func (s *Store) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return s.persist(items)
}

func (s *Store) load() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}

	var items map[string]string
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		// Corrupt store reads as empty rather than failing.
		return map[string]string{}
	}
	return items
}

func (s *Store) persist(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return apperrors.NewStorageUnavailableError("encoding store", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.NewStorageUnavailableError(fmt.Sprintf("creating store directory %s", dir), err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return apperrors.NewStorageUnavailableError("writing store", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return apperrors.NewStorageUnavailableError("replacing store", err)
	}
	return nil
}
