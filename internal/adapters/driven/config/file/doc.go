// Package file provides file-based implementations of driven port
// interfaces. These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//
// Recognised configuration keys include:
//   - api.url: base URL of the extraction service
//   - api.timeout_seconds: per-request timeout
//   - api.requests_per_second: client rate limit
//   - storage.data_dir: directory of the document file cache
//   - watch.dir: directory monitored in watch mode
//   - pdf.binary: pdfinfo executable used for page measurement
package file
