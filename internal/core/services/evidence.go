package services

import (
	"context"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
	"github.com/voltaic-labs/cellspec-cli/internal/logger"
)

// Ensure EvidenceService implements the interface.
var _ driving.EvidenceService = (*EvidenceService)(nil)

// EvidenceService resolves field citations against the rendered document.
// The overlay is recomputed on every request; nothing is cached, so a
// highlight always reflects the current page-dimension report.
type EvidenceService struct {
	session driving.SessionService
	pages   driven.PageSource
}

// NewEvidenceService creates an evidence service. The page source is
// optional; without it highlights carry no overlay geometry.
func NewEvidenceService(session driving.SessionService, pages driven.PageSource) *EvidenceService {
	return &EvidenceService{
		session: session,
		pages:   pages,
	}
}

// Highlight resolves the citation of the identified field.
// A field without a citation yields a nil highlight and no error. A
// citation whose page dimensions are not yet available yields a highlight
// without an overlay; the caller retries once the renderer has measured
// the page.
func (s *EvidenceService) Highlight(ctx context.Context, documentID, fieldID string) (*driving.Highlight, error) {
	doc := s.session.Document(documentID)
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	field := doc.FieldByID(fieldID)
	if field == nil {
		return nil, domain.ErrNotFound
	}
	if field.Source == nil {
		return nil, nil
	}

	h := &driving.Highlight{
		TextSnippet: field.Source.TextSnippet,
		Reason:      field.Source.Reason,
	}
	if field.Source.PageNumber != nil {
		h.PageNumber = *field.Source.PageNumber
	}

	if s.pages == nil || h.PageNumber == 0 {
		return h, nil
	}

	size, err := s.pages.PageSize(ctx, doc.FileKey, h.PageNumber)
	if err != nil {
		// Dimensions not yet known; the overlay stays nil until the
		// renderer reports them.
		logger.Debug("evidence: page size for %s p%d unavailable: %v", doc.FileKey, h.PageNumber, err)
		return h, nil
	}

	h.Overlay = domain.LocateEvidence(field.Source, size)
	return h, nil
}
