package driving

import (
	"context"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
)

// Highlight is a resolved citation ready for display: the page to scroll
// to, the overlay rectangle, and the supporting snippet.
type Highlight struct {
	// PageNumber is the 1-based page carrying the evidence.
	PageNumber int

	// Overlay is the percentage rectangle on that page, nil when the
	// citation carries no usable bounding box.
	Overlay *domain.Overlay

	// TextSnippet is the matched text, empty when unavailable.
	TextSnippet string

	// Reason is the extractor's rationale for the match.
	Reason string
}

// EvidenceService resolves a field's citation against the rendered
// document so the viewer can highlight the source region.
type EvidenceService interface {
	// Highlight resolves the citation of the identified field in the
	// identified document. Returns domain.ErrNotFound when the document
	// or field is unknown, and a nil highlight when the field carries
	// no citation.
	Highlight(ctx context.Context, documentID, fieldID string) (*Highlight, error)
}
