package driven

import "context"

// FileOperation identifies what happened to a watched file.
type FileOperation int

const (
	// FileCreated indicates a new file appeared.
	FileCreated FileOperation = iota
	// FileModified indicates an existing file changed.
	FileModified
	// FileDeleted indicates a file was removed.
	FileDeleted
)

// FileEvent is one observed change in a watched directory.
type FileEvent struct {
	// Path is the absolute path of the affected file.
	Path string

	// Operation is what happened.
	Operation FileOperation
}

// FileWatcher monitors a directory for document drops. Watch-mode
// ingestion consumes the event stream and uploads created files.
type FileWatcher interface {
	// Watch starts monitoring the directory. The returned channel is
	// closed when the context is cancelled or the watcher stops.
	Watch(ctx context.Context, dir string) (<-chan FileEvent, error)

	// Stop stops the watcher and releases resources.
	Stop() error
}
