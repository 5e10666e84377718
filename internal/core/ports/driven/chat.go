package driven

import "context"

// ChatClient asks the extraction backend free-form follow-up questions
// about a previously processed document.
type ChatClient interface {
	// SendMessage submits a question about the document identified by
	// the extraction service's file id and returns the answer text.
	SendMessage(ctx context.Context, fileID, message string) (string, error)
}
