package driven

import (
	"context"
	"time"
)

// StoredFile is an uploaded document binary cached for re-rendering.
type StoredFile struct {
	// ID is the cache key (the owning document's file key).
	ID string

	// Name is the original filename.
	Name string

	// Data is the raw file content.
	Data []byte

	// ModifiedAt is when the entry was last written.
	ModifiedAt time.Time
}

// FileStore caches uploaded document binaries so a document can be
// re-rendered when it is reselected, without a second upload.
type FileStore interface {
	// Put stores or replaces a file.
	Put(ctx context.Context, file *StoredFile) error

	// Get retrieves a file by id. Returns domain.ErrNotFound when the
	// id is unknown.
	Get(ctx context.Context, id string) (*StoredFile, error)

	// Delete removes a file. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all stored files.
	List(ctx context.Context) ([]*StoredFile, error)

	// Close releases any underlying resources.
	Close() error
}
