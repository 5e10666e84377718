// Package sqlite provides a SQLite-backed implementation of the file
// store driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. It caches the
// bytes of uploaded documents so the reviewer can re-render pages and
// resolve evidence highlights across sessions without re-uploading.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.cellspec/data/files.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
