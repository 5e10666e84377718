package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
	"github.com/voltaic-labs/cellspec-cli/internal/logger"
)

// UploadMonitor watches a directory and ingests documents dropped into it.
// Each created file becomes a new session document; failures are logged
// and skipped so one bad file does not stop the watch.
type UploadMonitor struct {
	watcher driven.FileWatcher
	ingest  driving.IngestService
	session driving.SessionService
}

// NewUploadMonitor creates an upload monitor.
func NewUploadMonitor(watcher driven.FileWatcher, ingest driving.IngestService, session driving.SessionService) *UploadMonitor {
	return &UploadMonitor{
		watcher: watcher,
		ingest:  ingest,
		session: session,
	}
}

// Run watches the directory until the context is cancelled. It returns
// the number of documents ingested.
func (m *UploadMonitor) Run(ctx context.Context, dir string) (int, error) {
	if m.watcher == nil {
		return 0, fmt.Errorf("watch %s: no file watcher configured", dir)
	}

	events, err := m.watcher.Watch(ctx, dir)
	if err != nil {
		return 0, fmt.Errorf("watch %s: %w", dir, err)
	}

	ingested := 0
	for {
		select {
		case <-ctx.Done():
			return ingested, ctx.Err()
		case event, ok := <-events:
			if !ok {
				return ingested, nil
			}
			if event.Operation != driven.FileCreated {
				continue
			}
			if m.ingestFile(ctx, event.Path) {
				ingested++
			}
		}
	}
}

// ingestFile uploads one dropped file, reporting success.
func (m *UploadMonitor) ingestFile(ctx context.Context, path string) bool {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("watch: opening %s: %v", path, err)
		return false
	}
	defer f.Close()

	doc, err := m.ingest.Ingest(ctx, filepath.Base(path), f)
	if err != nil {
		logger.Warn("watch: ingesting %s: %v", path, err)
		return false
	}

	m.session.AddDocument(doc)
	logger.Info("watch: ingested %s as document %s", path, doc.ID)
	return true
}
