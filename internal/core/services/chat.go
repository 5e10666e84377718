package services

import (
	"context"
	"fmt"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// ChatService answers follow-up questions about processed documents by
// correlating session documents with their extraction-service file ids.
type ChatService struct {
	session driving.SessionService
	client  driven.ChatClient
}

// NewChatService creates a chat service. The client may be nil when the
// backend exposes no chat endpoint; Ask then fails cleanly.
func NewChatService(session driving.SessionService, client driven.ChatClient) *ChatService {
	return &ChatService{
		session: session,
		client:  client,
	}
}

// Ask sends a question about the identified session document.
func (s *ChatService) Ask(ctx context.Context, documentID, message string) (string, error) {
	if s.client == nil {
		return "", domain.ErrChatUnavailable
	}
	doc := s.session.Document(documentID)
	if doc == nil {
		return "", domain.ErrUnknownDocument
	}
	if doc.RemoteID == "" {
		return "", fmt.Errorf("document %s: %w", documentID, domain.ErrChatUnavailable)
	}

	answer, err := s.client.SendMessage(ctx, doc.RemoteID, message)
	if err != nil {
		return "", fmt.Errorf("chat about %s: %w", doc.Name, err)
	}
	return answer, nil
}
