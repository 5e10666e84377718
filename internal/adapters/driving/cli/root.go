// Package cli provides the command-line interface for the CellSpec CLI.
// Commands are thin shells over the driving ports; all field-state and
// document-correlation logic lives in the core services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
	"github.com/voltaic-labs/cellspec-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Injected services. Commands check for nil so the CLI degrades cleanly
// when a service is not wired (e.g. in tests).
var (
	sessionService  driving.SessionService
	ingestService   driving.IngestService
	reviewService   driving.ReviewService
	evidenceService driving.EvidenceService
	chatService     driving.ChatService
	configStore     driven.ConfigStore
	fileWatcher     driven.FileWatcher
)

// verbose is bound to the --verbose persistent flag.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cellspec",
	Short: "Review AI-extracted battery specification documents",
	Long: `CellSpec is a reviewer for AI-extracted battery specification documents.

Upload a datasheet to the extraction service, inspect the extracted
fields with their confidence tiers and page-level evidence, correct or
complete values, and gate submission on review issues.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Services bundles everything the commands need.
type Services struct {
	Session  driving.SessionService
	Ingest   driving.IngestService
	Review   driving.ReviewService
	Evidence driving.EvidenceService
	Chat     driving.ChatService
	Config   driven.ConfigStore
	Watcher  driven.FileWatcher
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	sessionService = s.Session
	ingestService = s.Ingest
	reviewService = s.Review
	evidenceService = s.Evidence
	chatService = s.Chat
	configStore = s.Config
	fileWatcher = s.Watcher
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
