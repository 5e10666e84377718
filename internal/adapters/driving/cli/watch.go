package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/voltaic-labs/cellspec-cli/internal/core/services"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and ingest dropped documents",
	Long: `Monitors a directory and uploads every document file created in it to
the extraction service. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil || sessionService == nil {
		return errors.New("ingest service not configured")
	}
	if fileWatcher == nil {
		return errors.New("file watcher not configured")
	}

	dir := args[0]
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (ctrl-c to stop)...\n", dir)

	monitor := services.NewUploadMonitor(fileWatcher, ingestService, sessionService)
	ingested, err := monitor.Run(ctx, dir)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	cmd.Printf("Stopped. Ingested %d documents.\n", ingested)
	return nil
}
