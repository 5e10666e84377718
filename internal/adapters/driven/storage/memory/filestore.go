package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore is an in-memory implementation of driven.FileStore. It caches
// uploaded document bytes for the lifetime of the process.
type FileStore struct {
	mu    sync.RWMutex
	files map[string]*driven.StoredFile
}

// NewFileStore creates a new in-memory file store.
func NewFileStore() *FileStore {
	return &FileStore{
		files: make(map[string]*driven.StoredFile),
	}
}

// Put stores or replaces a file.
func (s *FileStore) Put(_ context.Context, file *driven.StoredFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *file
	s.files[file.ID] = &stored
	return nil
}

// Get retrieves a file by ID.
func (s *FileStore) Get(_ context.Context, id string) (*driven.StoredFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	file, ok := s.files[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *file
	return &copied, nil
}

// Delete removes a file.
func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, id)
	return nil
}

// List returns all files sorted by modification time, oldest first.
func (s *FileStore) List(_ context.Context) ([]*driven.StoredFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	files := make([]*driven.StoredFile, 0, len(s.files))
	for _, file := range s.files {
		copied := *file
		files = append(files, &copied)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedAt.Before(files[j].ModifiedAt)
	})
	return files, nil
}

// Close releases resources.
func (s *FileStore) Close() error {
	return nil
}
