package driving

import "context"

// ChatService answers free-form questions about a processed document.
type ChatService interface {
	// Ask sends a question about the identified session document and
	// returns the backend's answer. Returns domain.ErrUnknownDocument
	// when the document is not in the session.
	Ask(ctx context.Context, documentID, message string) (string, error)
}
