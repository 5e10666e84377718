package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUploadMonitor_Run_IngestsCreatedFiles(t *testing.T) {
	dir := t.TempDir()
	pathA := writeTempFile(t, dir, "a.pdf", "%PDF-a")
	pathB := writeTempFile(t, dir, "b.pdf", "%PDF-b")

	watcher := &mockFileWatcher{events: []driven.FileEvent{
		{Path: pathA, Operation: driven.FileCreated},
		{Path: pathB, Operation: driven.FileModified},
	}}
	extractor := &mockExtractor{result: &driven.ExtractionResult{FileID: "abc"}}
	session := NewSession(nil)
	monitor := NewUploadMonitor(watcher, NewIngestService(extractor, nil), session)

	count, err := monitor.Run(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	docs := session.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, "a.pdf", docs[0].Name)
}

func TestUploadMonitor_Run_SkipsFailedIngestion(t *testing.T) {
	dir := t.TempDir()
	pathA := writeTempFile(t, dir, "good.pdf", "%PDF")

	watcher := &mockFileWatcher{events: []driven.FileEvent{
		{Path: pathA, Operation: driven.FileCreated},
		{Path: filepath.Join(dir, "missing.pdf"), Operation: driven.FileCreated},
	}}
	extractor := &mockExtractor{result: &driven.ExtractionResult{FileID: "abc"}}
	session := NewSession(nil)
	monitor := NewUploadMonitor(watcher, NewIngestService(extractor, nil), session)

	count, err := monitor.Run(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, session.Documents(), 1)
}

func TestUploadMonitor_Run_WatchError(t *testing.T) {
	watcher := &mockFileWatcher{err: errors.New("no such directory")}
	monitor := NewUploadMonitor(watcher, NewIngestService(&mockExtractor{}, nil), NewSession(nil))

	count, err := monitor.Run(context.Background(), "/nope")

	require.Error(t, err)
	assert.Zero(t, count)
}

func TestUploadMonitor_Run_NoWatcher(t *testing.T) {
	monitor := NewUploadMonitor(nil, NewIngestService(&mockExtractor{}, nil), NewSession(nil))

	_, err := monitor.Run(context.Background(), "/tmp")

	require.Error(t, err)
}

func TestUploadMonitor_Run_ContextCancelled(t *testing.T) {
	dir := t.TempDir()
	// A watcher that never emits: the open channel keeps Run blocked until
	// the context fires.
	watcher := &blockingWatcher{}
	monitor := NewUploadMonitor(watcher, NewIngestService(&mockExtractor{}, nil), NewSession(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count, err := monitor.Run(ctx, dir)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, count)
}

type blockingWatcher struct{}

func (b *blockingWatcher) Watch(_ context.Context, _ string) (<-chan driven.FileEvent, error) {
	return make(chan driven.FileEvent), nil
}

func (b *blockingWatcher) Stop() error { return nil }
