package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore is a SQLite-based cache of uploaded document bytes.
type FileStore struct {
	db   *sql.DB
	path string
}

// NewFileStore creates a SQLite file store at the specified data
// directory. If dataDir is empty, defaults to ~/.cellspec/data/files.db.
func NewFileStore(dataDir string) (*FileStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".cellspec", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "files.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &FileStore{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *FileStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *FileStore) Path() string {
	return s.path
}

// Put stores or replaces a file.
func (s *FileStore) Put(ctx context.Context, file *driven.StoredFile) error {
	if file.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO files (id, name, data, modified_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			data = excluded.data,
			modified_at = excluded.modified_at
	`, file.ID, file.Name, file.Data, file.ModifiedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving file: %w", err)
	}
	return nil
}

// Get retrieves a file by ID.
func (s *FileStore) Get(ctx context.Context, id string) (*driven.StoredFile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, data, modified_at
		FROM files WHERE id = ?
	`, id)

	var file driven.StoredFile
	if err := row.Scan(&file.ID, &file.Name, &file.Data, &file.ModifiedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning file: %w", err)
	}
	return &file, nil
}

// Delete removes a file.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM files WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

// List returns all cached files, oldest first.
func (s *FileStore) List(ctx context.Context) ([]*driven.StoredFile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, data, modified_at
		FROM files ORDER BY modified_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying files: %w", err)
	}
	defer rows.Close()

	var files []*driven.StoredFile //nolint:prealloc // size unknown from query
	for rows.Next() {
		var file driven.StoredFile
		if err := rows.Scan(&file.ID, &file.Name, &file.Data, &file.ModifiedAt); err != nil {
			return nil, fmt.Errorf("scanning file: %w", err)
		}
		files = append(files, &file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating files: %w", err)
	}

	return files, nil
}

// migrate runs all pending migrations.
func (s *FileStore) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
