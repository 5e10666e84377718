package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
)

var (
	uploadQuery string
	uploadTier  string
	uploadJSON  bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a document and show the extracted fields",
	Long: `Uploads a specification document to the extraction service and prints
the extracted fields with their confidence tiers.

Confidence tiers:
  high    - confidence 80 or above
  medium  - confidence 50 to 79
  low     - confidence below 50
  manual  - no machine confidence`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadQuery, "query", "q", "", "only show fields matching the query")
	uploadCmd.Flags().StringVarP(&uploadTier, "tier", "t", "", "only show fields in the tier (high|medium|low|manual)")
	uploadCmd.Flags().BoolVar(&uploadJSON, "json", false, "output fields as JSON")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if ingestService == nil || sessionService == nil {
		return errors.New("ingest service not configured")
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

	fields, err := selectFields(uploadQuery, uploadTier)
	if err != nil {
		return err
	}

	if uploadJSON {
		return outputFieldsJSON(cmd, doc, fields)
	}

	cmd.Printf("Document: %s\n", doc.Name)
	if doc.RemoteID != "" {
		cmd.Printf("File ID:  %s\n", doc.RemoteID)
	}
	cmd.Println()
	outputFieldsTable(cmd, fields)
	return nil
}

// selectFields applies the query and tier filters to the active
// document's fields.
func selectFields(query, tier string) ([]domain.Field, error) {
	fields := sessionService.Fields()
	if query != "" {
		fields = sessionService.SearchFields(query)
	}
	if tier == "" {
		return fields, nil
	}

	want, err := parseTier(tier)
	if err != nil {
		return nil, err
	}
	var matched []domain.Field
	for i := range fields {
		if fields[i].Tier() == want {
			matched = append(matched, fields[i])
		}
	}
	return matched, nil
}

// parseTier maps a tier flag value to the domain tier.
func parseTier(s string) (domain.Tier, error) {
	switch strings.ToLower(s) {
	case "high":
		return domain.TierHigh, nil
	case "medium":
		return domain.TierMedium, nil
	case "low":
		return domain.TierLow, nil
	case "manual":
		return domain.TierUnset, nil
	default:
		return domain.TierUnset, fmt.Errorf("unknown tier %q (want high, medium, low, or manual)", s)
	}
}

// fieldView is the JSON output shape for a field.
type fieldView struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Value      string   `json:"value"`
	Confidence *float64 `json:"confidence,omitempty"`
	Tier       string   `json:"tier"`
	Page       *int     `json:"page,omitempty"`
	Snippet    string   `json:"snippet,omitempty"`
}

func outputFieldsJSON(cmd *cobra.Command, doc *domain.Document, fields []domain.Field) error {
	views := make([]fieldView, 0, len(fields))
	for i := range fields {
		f := &fields[i]
		view := fieldView{
			ID:         f.ID,
			Label:      f.Label,
			Value:      f.Value,
			Confidence: f.Confidence,
			Tier:       f.Tier().String(),
		}
		if f.Source != nil {
			view.Page = f.Source.PageNumber
			view.Snippet = f.Source.TextSnippet
		}
		views = append(views, view)
	}

	out := struct {
		Document string      `json:"document"`
		FileID   string      `json:"file_id,omitempty"`
		Fields   []fieldView `json:"fields"`
	}{
		Document: doc.Name,
		FileID:   doc.RemoteID,
		Fields:   views,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling fields: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputFieldsTable(cmd *cobra.Command, fields []domain.Field) {
	if len(fields) == 0 {
		cmd.Println("No fields.")
		return
	}

	for i := range fields {
		f := &fields[i]
		value := f.Value
		if value == "" {
			value = "(empty)"
		}
		cmd.Printf("  %-24s %-16s %s", f.Label, value, f.Tier())
		if f.Confidence != nil {
			cmd.Printf(" (%.0f)", *f.Confidence)
		}
		if f.RequiresReview {
			cmd.Printf(" [review]")
		}
		cmd.Println()
	}
	cmd.Printf("\nTotal: %d fields\n", len(fields))
}
