package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetAndGet(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "store.json"))

	err := store.SetItem("whatsappNumber", "911234567890")
	require.NoError(t, err)

	assert.Equal(t, "911234567890", store.GetItem("whatsappNumber"))
}

func TestStore_GetMissingKey(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "store.json"))

	assert.Equal(t, "", store.GetItem("bills"))
}

func TestStore_MissingFileReadsAsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist", "store.json"))

	assert.Equal(t, "", store.GetItem("anything"))
}

func TestStore_CorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewStore(path)
	assert.Equal(t, "", store.GetItem("bills"))
}

func TestStore_OverwriteValue(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "store.json"))

	require.NoError(t, store.SetItem("isAuthenticated", "true"))
	require.NoError(t, store.SetItem("isAuthenticated", "false"))

	assert.Equal(t, "false", store.GetItem("isAuthenticated"))
}

func TestStore_RemoveItem(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "store.json"))

	require.NoError(t, store.SetItem("isAuthenticated", "true"))
	require.NoError(t, store.RemoveItem("isAuthenticated"))

	assert.Equal(t, "", store.GetItem("isAuthenticated"))
}

func TestStore_RemoveMissingKeyIsNoOp(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "store.json"))

	assert.NoError(t, store.RemoveItem("ghost"))
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first := NewStore(path)
	require.NoError(t, first.SetItem("bills", `[{"id":"1"}]`))

	second := NewStore(path)
	assert.Equal(t, `[{"id":"1"}]`, second.GetItem("bills"))
}

func TestStore_CreatesParentDirectoryOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "store.json")
	store := NewStore(path)

	require.NoError(t, store.SetItem("bills", "[]"))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
