package services

import (
	"context"
	"io"
	"sync"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
)

// mockExtractor returns a canned extraction result or error.
type mockExtractor struct {
	result   *driven.ExtractionResult
	err      error
	lastName string
	lastData []byte
}

func (m *mockExtractor) ProcessDocument(_ context.Context, filename string, file io.Reader) (*driven.ExtractionResult, error) {
	m.lastName = filename
	m.lastData, _ = io.ReadAll(file)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockFileStore records puts in memory.
type mockFileStore struct {
	mu     sync.Mutex
	stored map[string]*driven.StoredFile
	putErr error
}

func newMockFileStore() *mockFileStore {
	return &mockFileStore{stored: make(map[string]*driven.StoredFile)}
}

func (m *mockFileStore) Put(_ context.Context, file *driven.StoredFile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.stored[file.ID] = file
	return nil
}

func (m *mockFileStore) Get(_ context.Context, id string) (*driven.StoredFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.stored[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

func (m *mockFileStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stored, id)
	return nil
}

func (m *mockFileStore) List(_ context.Context) ([]*driven.StoredFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	files := make([]*driven.StoredFile, 0, len(m.stored))
	for _, f := range m.stored {
		files = append(files, f)
	}
	return files, nil
}

func (m *mockFileStore) Close() error { return nil }

// mockPageSource reports fixed page dimensions.
type mockPageSource struct {
	size domain.PageSize
	err  error
}

func (m *mockPageSource) PageSize(_ context.Context, _ string, _ int) (domain.PageSize, error) {
	if m.err != nil {
		return domain.PageSize{}, m.err
	}
	return m.size, nil
}

func (m *mockPageSource) PageCount(_ context.Context, _ string) (int, error) {
	return 1, nil
}

// mockChatClient echoes a canned answer.
type mockChatClient struct {
	answer     string
	err        error
	lastFileID string
	lastMsg    string
}

func (m *mockChatClient) SendMessage(_ context.Context, fileID, message string) (string, error) {
	m.lastFileID = fileID
	m.lastMsg = message
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

// mockFileWatcher replays a fixed event sequence then closes the channel.
type mockFileWatcher struct {
	events []driven.FileEvent
	err    error
}

func (m *mockFileWatcher) Watch(_ context.Context, _ string) (<-chan driven.FileEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	ch := make(chan driven.FileEvent, len(m.events))
	for _, e := range m.events {
		ch <- e
	}
	close(ch)
	return ch, nil
}

func (m *mockFileWatcher) Stop() error { return nil }
