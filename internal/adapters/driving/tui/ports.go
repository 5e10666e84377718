// Package tui provides an interactive terminal reviewer for cellspec.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session owns the uploaded documents and their field sets.
	Session driving.SessionService

	// Ingest uploads documents and runs extraction.
	Ingest driving.IngestService

	// Review gates submission of a field set.
	Review driving.ReviewService

	// Evidence resolves field citations against rendered pages.
	// Optional; the evidence view degrades to text-only without it.
	Evidence driving.EvidenceService

	// Chat answers free-form questions about a document.
	// Optional; the chat view reports unavailability without it.
	Chat driving.ChatService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	session driving.SessionService,
	ingest driving.IngestService,
	review driving.ReviewService,
) *Ports {
	return &Ports{
		Session: session,
		Ingest:  ingest,
		Review:  review,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	if p.Review == nil {
		return ErrMissingReviewService
	}
	return nil
}
