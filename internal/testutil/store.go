package testutil

import (
	"path/filepath"
	"testing"

	"rajubill/internal/infrastructure/storage"
)

// SetupTestStore returns a file store rooted in a per-test temp dir.
func SetupTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewStore(filepath.Join(t.TempDir(), "store.json"))
}
