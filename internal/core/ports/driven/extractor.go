package driven

import (
	"context"
	"io"
)

// Extractor submits a document to the remote extraction service and
// returns the structured result. Implementations resolve the historical
// response-shape quirks (specifications as a mapping vs a single-element
// list) at the decode boundary; callers only ever see ExtractionResult.
type Extractor interface {
	// ProcessDocument uploads the file as a multipart request and
	// returns the extracted specifications. A non-success status or
	// transport failure yields domain.ErrExtractionFailed; a response
	// without a usable specifications payload yields
	// domain.ErrMalformedResponse.
	ProcessDocument(ctx context.Context, filename string, file io.Reader) (*ExtractionResult, error)
}

// ExtractionResult is the normalised extraction response.
type ExtractionResult struct {
	// FileID is the service's opaque identifier for this upload.
	// Follow-up chat requests must reference it.
	FileID string

	// Specs holds one record per extracted parameter, in the order the
	// service emitted them.
	Specs []ExtractedSpec
}

// ExtractedSpec is one extracted parameter as reported on the wire.
// Confidence values are on the service's 0-1 fractional scale; the
// ingestion service converts them to the canonical 0-100 scale.
type ExtractedSpec struct {
	// FieldID is the parameter code keying this result.
	FieldID string

	// Value is the extracted value, empty when the service found none.
	Value string

	// Confidence is the extraction confidence in [0, 1], nil when the
	// service reported none.
	Confidence *float64

	// SourceConfidence is the source-match confidence in [0, 1].
	SourceConfidence *float64

	// Calculated reports whether the value was rule-derived.
	Calculated bool

	// RulePassed is the rule-evaluation outcome, nil when no rules ran.
	RulePassed *bool

	// RuleViolations lists failed rules in evaluation order.
	RuleViolations []string

	// RequiresReview flags the field for mandatory human review.
	RequiresReview bool

	// Verification carries the citation, nil when the service supplied
	// no verification_result.
	Verification *VerificationResult
}

// VerificationResult is the wire citation attached to an extracted value.
// All fields are optional on the wire.
type VerificationResult struct {
	// PageIndex is the 0-based page index, nil when unknown.
	PageIndex *int

	// MatchedText is the text the extractor matched.
	MatchedText string

	// BBox is the four-number bounding box (encoding per the magnitude
	// rule), nil when absent.
	BBox []float64

	// Reason is the extractor's rationale.
	Reason string
}
