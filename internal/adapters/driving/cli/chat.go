package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
)

// chatFileID asks about an already-processed file without re-uploading.
var chatFileID string

var chatCmd = &cobra.Command{
	Use:   "chat [file] [question]",
	Short: "Ask a follow-up question about a document",
	Long: `Uploads a document and asks the extraction service a follow-up
question about it.

With --file-id, the upload is skipped and the question goes to the
already-processed file directly:

  cellspec chat --file-id abc "What is the nominal capacity?"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatFileID, "file-id", "", "extraction-service file id of a processed document")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	if chatService == nil || sessionService == nil {
		return errors.New("chat service not configured")
	}

	ctx := context.Background()

	var docID, question string
	if chatFileID != "" {
		if len(args) != 1 {
			return errors.New("with --file-id, pass only the question")
		}
		question = args[0]
		docID = sessionService.AddDocument(&domain.Document{
			Name:     chatFileID,
			RemoteID: chatFileID,
		})
	} else {
		if len(args) != 2 {
			return errors.New("pass a file and a question, or use --file-id")
		}
		if ingestService == nil {
			return errors.New("ingest service not configured")
		}
		path := args[0]
		question = args[1]

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		doc, err := ingestService.Ingest(ctx, filepath.Base(path), f)
		if err != nil {
			return fmt.Errorf("ingesting %s: %w", path, err)
		}
		docID = sessionService.AddDocument(doc)
	}

	answer, err := chatService.Ask(ctx, docID, question)
	if err != nil {
		if errors.Is(err, domain.ErrChatUnavailable) {
			return errors.New("chat is not available for this document")
		}
		return fmt.Errorf("asking about document: %w", err)
	}

	cmd.Println(answer)
	return nil
}
