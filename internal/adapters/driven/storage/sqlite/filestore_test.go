package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewFileStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "files.db"), store.Path())
}

func TestFileStore_PutGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Put(ctx, &driven.StoredFile{
		ID:         "doc-1",
		Name:       "cell.pdf",
		Data:       []byte("%PDF-content"),
		ModifiedAt: time.Now(),
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.ID)
	assert.Equal(t, "cell.pdf", got.Name)
	assert.Equal(t, []byte("%PDF-content"), got.Data)
}

func TestFileStore_Put_EmptyID(t *testing.T) {
	store := newTestStore(t)

	err := store.Put(context.Background(), &driven.StoredFile{Name: "cell.pdf"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFileStore_Put_Replaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &driven.StoredFile{
		ID: "doc-1", Name: "old.pdf", Data: []byte("old"), ModifiedAt: time.Now(),
	}))
	require.NoError(t, store.Put(ctx, &driven.StoredFile{
		ID: "doc-1", Name: "new.pdf", Data: []byte("new"), ModifiedAt: time.Now(),
	}))

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "new.pdf", got.Name)
	assert.Equal(t, []byte("new"), got.Data)

	files, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFileStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &driven.StoredFile{
		ID: "doc-1", Data: []byte("x"), ModifiedAt: time.Now(),
	}))
	require.NoError(t, store.Delete(ctx, "doc-1"))

	_, err := store.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileStore_List_OrderedByModifiedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, store.Put(ctx, &driven.StoredFile{
		ID: "newest", Data: []byte("n"), ModifiedAt: base.Add(2 * time.Hour),
	}))
	require.NoError(t, store.Put(ctx, &driven.StoredFile{
		ID: "oldest", Data: []byte("o"), ModifiedAt: base,
	}))

	files, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "oldest", files[0].ID)
	assert.Equal(t, "newest", files[1].ID)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, &driven.StoredFile{
		ID: "doc-1", Name: "cell.pdf", Data: []byte("%PDF"), ModifiedAt: time.Now(),
	}))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "cell.pdf", got.Name)
}
