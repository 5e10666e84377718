package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Check a document's fields against the submission gate",
	Long: `Uploads a document, extracts its fields, and reports submission
readiness.

Blocking issues (empty values) must be resolved before submission.
Cautionary issues (confidence below 80) allow submission but ask for
confirmation.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	if ingestService == nil || sessionService == nil || reviewService == nil {
		return errors.New("review service not configured")
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ingestService.Ingest(context.Background(), filepath.Base(path), f)
	if err != nil {
		return fmt.Errorf("ingesting %s: %w", path, err)
	}
	sessionService.AddDocument(doc)

	report := reviewService.Evaluate(sessionService.Fields())

	cmd.Printf("Review: %s\n\n", doc.Name)

	if len(report.Blocking) > 0 {
		cmd.Printf("Blocking (%d): fields without a value\n", len(report.Blocking))
		for i := range report.Blocking {
			cmd.Printf("  - %s\n", report.Blocking[i].Label)
		}
		cmd.Println()
	}

	if len(report.Cautionary) > 0 {
		cmd.Printf("Cautionary (%d): low-confidence values\n", len(report.Cautionary))
		for i := range report.Cautionary {
			f := &report.Cautionary[i]
			cmd.Printf("  - %s = %s", f.Label, f.Value)
			if f.Confidence != nil {
				cmd.Printf(" (%.0f)", *f.Confidence)
			}
			cmd.Println()
		}
		cmd.Println()
	}

	switch {
	case len(report.Blocking) > 0:
		cmd.Println("Not ready: fill the blocking fields before submitting.")
	case len(report.Cautionary) > 0:
		cmd.Println("Ready with warnings: verify the cautionary values before submitting.")
	default:
		cmd.Println("Ready: all fields filled with high confidence.")
	}

	return nil
}
