// Command cellspec is the entry point for the CellSpec CLI.
// It wires the driven adapters into the core services and hands the
// result to the command layer.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driven/config/file"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driven/filewatcher"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driven/pdf"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driven/specapi"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driven/storage/memory"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driven/storage/sqlite"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/cli"
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
	"github.com/voltaic-labs/cellspec-cli/internal/core/services"
	"github.com/voltaic-labs/cellspec-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	apiClient := specapi.NewClient(apiConfig(configStore))

	// The sqlite cache keeps uploads addressable across runs; fall back
	// to the in-memory store when the database cannot be opened.
	var fileStore driven.FileStore
	sqliteStore, err := sqlite.NewFileStore(configStore.GetString("storage.data_dir"))
	if err != nil {
		logger.Warn("file cache unavailable, using in-memory store: %v", err)
		fileStore = memory.NewFileStore()
	} else {
		fileStore = sqliteStore
		defer sqliteStore.Close()
	}

	pageSource := pdf.NewPDFInfoSource(fileStore, configStore.GetString("pdf.binary"))

	watcher, err := filewatcher.NewFSNotifyWatcher(nil)
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}

	session := services.NewSession(domain.DefaultCatalog())
	ingest := services.NewIngestService(apiClient, fileStore)

	cli.SetServices(cli.Services{
		Session:  session,
		Ingest:   ingest,
		Review:   services.NewReviewService(),
		Evidence: services.NewEvidenceService(session, pageSource),
		Chat:     services.NewChatService(session, apiClient),
		Config:   configStore,
		Watcher:  watcher,
	})
	cli.SetVersion(version)

	return cli.Execute()
}

// apiConfig builds the extraction client configuration from the config
// store, falling back to the client defaults for unset keys.
func apiConfig(cfg driven.ConfigStore) specapi.Config {
	c := specapi.Config{
		BaseURL: cfg.GetString("api.url"),
	}
	if secs := cfg.GetInt("api.timeout_seconds"); secs > 0 {
		c.Timeout = time.Duration(secs) * time.Second
	}
	if rps := cfg.GetInt("api.requests_per_second"); rps > 0 {
		c.RequestsPerSecond = float64(rps)
	}
	return c
}
