// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewUpload is the document upload view.
	ViewUpload
	// ViewDocuments lists the session's uploaded documents.
	ViewDocuments
	// ViewFields is the field review view for the active document.
	ViewFields
	// ViewEvidence shows page-level evidence for a field.
	ViewEvidence
	// ViewReview is the submission gate view.
	ViewReview
	// ViewChat is the document Q&A view.
	ViewChat
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewUpload:
		return "upload"
	case ViewDocuments:
		return "documents"
	case ViewFields:
		return "fields"
	case ViewEvidence:
		return "evidence"
	case ViewReview:
		return "review"
	case ViewChat:
		return "chat"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// DocumentIngested carries the outcome of an upload and extraction.
type DocumentIngested struct {
	Document *domain.Document
	Err      error
}

// DocumentSelected signals a session document was selected for review.
type DocumentSelected struct {
	ID string
}

// EvidenceRequested asks for the citation of a field to be resolved.
type EvidenceRequested struct {
	DocumentID string
	FieldID    string
	FieldLabel string
	FieldValue string
}

// EvidenceLoaded carries a resolved citation for display.
type EvidenceLoaded struct {
	FieldID   string
	Highlight *driving.Highlight
	Err       error
}

// ChatAnswered carries the backend's answer to a document question.
type ChatAnswered struct {
	Answer string
	Err    error
}
