package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
	"github.com/voltaic-labs/cellspec-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService uploads documents to the extraction service and translates
// the raw result into session documents. It is the single boundary where
// wire confidences (0-1 fractional) become the canonical 0-100 scale and
// 0-based page indices become 1-based page numbers.
type IngestService struct {
	extractor driven.Extractor
	files     driven.FileStore
}

// NewIngestService creates an ingest service. The file store is optional;
// without it uploads are not cached for re-rendering.
func NewIngestService(extractor driven.Extractor, files driven.FileStore) *IngestService {
	return &IngestService{
		extractor: extractor,
		files:     files,
	}
}

// Ingest uploads the file, waits for extraction, and returns the new
// document. Extraction and decode failures are terminal: no partial
// document is produced and nothing is cached.
func (s *IngestService) Ingest(ctx context.Context, filename string, file io.Reader) (*domain.Document, error) {
	if s.extractor == nil {
		return nil, fmt.Errorf("ingest %s: no extractor configured", filename)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: reading file: %w", filename, err)
	}

	logger.Info("ingest: uploading %s (%d bytes)", filename, len(data))
	result, err := s.extractor.ProcessDocument(ctx, filename, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", filename, err)
	}

	doc := &domain.Document{
		ID:         uuid.NewString(),
		Name:       filename,
		RemoteID:   result.FileID,
		Fields:     translateSpecs(result.Specs),
		UploadedAt: time.Now(),
	}
	doc.FileKey = doc.ID

	if s.files != nil {
		stored := &driven.StoredFile{
			ID:         doc.FileKey,
			Name:       filename,
			Data:       data,
			ModifiedAt: time.Now(),
		}
		if err := s.files.Put(ctx, stored); err != nil {
			// The document is still usable without the cache; the
			// viewer just cannot re-render it later.
			logger.Warn("ingest: caching %s failed: %v", filename, err)
		}
	}

	logger.Info("ingest: %s extracted %d fields (remote id %s)", filename, len(doc.Fields), doc.RemoteID)
	return doc, nil
}

// translateSpecs converts wire records into domain fields, preserving the
// wire order. The label defaults to the field id; catalog enrichment
// happens only for manually added fields.
func translateSpecs(specs []driven.ExtractedSpec) []domain.Field {
	fields := make([]domain.Field, 0, len(specs))
	for _, spec := range specs {
		field := domain.Field{
			ID:               spec.FieldID,
			TypeID:           spec.FieldID,
			Label:            spec.FieldID,
			Value:            spec.Value,
			Confidence:       scaleConfidence(spec.Confidence),
			Calculated:       spec.Calculated,
			SourceConfidence: scaleConfidence(spec.SourceConfidence),
			RulePassed:       spec.RulePassed,
			RuleViolations:   spec.RuleViolations,
			RequiresReview:   spec.RequiresReview,
			Source:           translateVerification(spec.Verification),
		}
		fields = append(fields, field)
	}
	return fields
}

// translateVerification builds a citation from a wire verification result.
func translateVerification(v *driven.VerificationResult) *domain.Citation {
	if v == nil {
		return nil
	}
	c := &domain.Citation{
		TextSnippet: v.MatchedText,
		BoundingBox: v.BBox,
		Reason:      v.Reason,
	}
	if v.PageIndex != nil {
		page := *v.PageIndex + 1
		c.PageNumber = &page
	}
	return c
}

// scaleConfidence converts a 0-1 fractional confidence to the 0-100 scale.
func scaleConfidence(fraction *float64) *float64 {
	if fraction == nil {
		return nil
	}
	scaled := *fraction * 100
	return &scaled
}
