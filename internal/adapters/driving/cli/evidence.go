package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence [file]",
	Short: "Show the page-level evidence behind extracted fields",
	Long: `Uploads a document and prints, for each extracted field, where in the
document its value was found: page number, matched text, and the
highlight region as percentages of the page.`,
	Args: cobra.ExactArgs(1),
	RunE: runEvidence,
}

func init() {
	rootCmd.AddCommand(evidenceCmd)
}

func runEvidence(cmd *cobra.Command, args []string) error {
	if ingestService == nil || sessionService == nil || evidenceService == nil {
		return errors.New("evidence service not configured")
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ctx := context.Background()
	doc, err := ingestService.Ingest(ctx, filepath.Base(path), f)
	if err != nil {
		return fmt.Errorf("ingesting %s: %w", path, err)
	}
	sessionService.AddDocument(doc)

	cmd.Printf("Evidence: %s\n\n", doc.Name)

	cited := 0
	for i := range doc.Fields {
		field := &doc.Fields[i]
		highlight, err := evidenceService.Highlight(ctx, doc.ID, field.ID)
		if err != nil {
			return fmt.Errorf("resolving evidence for %s: %w", field.Label, err)
		}
		if highlight == nil {
			continue
		}
		cited++

		cmd.Printf("  %s = %s\n", field.Label, field.Value)
		if highlight.PageNumber > 0 {
			cmd.Printf("    Page:    %d\n", highlight.PageNumber)
		}
		if highlight.TextSnippet != "" {
			cmd.Printf("    Matched: %q\n", highlight.TextSnippet)
		}
		if highlight.Reason != "" {
			cmd.Printf("    Reason:  %s\n", highlight.Reason)
		}
		if highlight.Overlay != nil {
			o := highlight.Overlay
			cmd.Printf("    Region:  %.1f%% from left, %.1f%% from top, %.1f%% x %.1f%%\n",
				o.Left, o.Top, o.Width, o.Height)
		}
		cmd.Println()
	}

	cmd.Printf("%d of %d fields carry evidence.\n", cited, len(doc.Fields))
	return nil
}
