package domain

import "strings"

// FieldType is a catalog entry describing a known specification parameter.
// The catalog is static and read-only for the lifetime of the process.
type FieldType struct {
	// ID is the symbolic parameter code (e.g. "C_NOMINAL_AH_DB").
	ID string

	// Label is the human-readable parameter name.
	Label string

	// Unit is the physical unit, empty when the parameter is dimensionless.
	Unit string
}

// Citation is the evidence backing an extracted field value: where in the
// source document the value was found and why the extractor chose it.
type Citation struct {
	// PageNumber is the 1-based page index, nil when unknown.
	PageNumber *int

	// TextSnippet is the matched text, empty when unavailable.
	TextSnippet string

	// BoundingBox locates the match on the page. It is a four-number
	// rectangle in one of two legacy encodings; see LocateEvidence.
	// Nil when no region is available.
	BoundingBox []float64

	// Reason is the extractor's free-text rationale.
	Reason string
}

// Field is one specification parameter within a document's field set.
// Fields are either produced by extraction or added manually by the reviewer.
type Field struct {
	// ID is unique within the owning document's field set and stable
	// across edits. Manually added fields get a freshly generated id.
	ID string

	// TypeID references a FieldType by id. A dangling reference is
	// tolerated; display falls back to Label.
	TypeID string

	// Label is the display name, copied at creation time. It is not
	// re-derived from the catalog after creation.
	Label string

	// Value is the current value. Empty means "unfilled".
	Value string

	// Confidence is the extraction confidence on the 0-100 scale.
	// Nil means manually entered, no machine confidence.
	Confidence *float64

	// Source is the evidence citation, nil when none is available.
	Source *Citation

	// Calculated reports whether the value was derived by a rule rather
	// than read directly from the document.
	Calculated bool

	// SourceConfidence is the confidence of the cited source match on
	// the 0-100 scale, nil when not reported.
	SourceConfidence *float64

	// RulePassed reports the outcome of rule evaluation, nil when no
	// rules apply.
	RulePassed *bool

	// RuleViolations lists failed rule descriptions in evaluation order.
	RuleViolations []string

	// RequiresReview is set when the extractor flags the field for
	// mandatory human review.
	RequiresReview bool
}

// Tier buckets a field's confidence for review triage.
type Tier int

const (
	// TierUnset means no machine confidence (manually entered).
	TierUnset Tier = iota
	// TierLow is confidence below 50.
	TierLow
	// TierMedium is confidence in [50, 80).
	TierMedium
	// TierHigh is confidence of 80 or above.
	TierHigh
)

// String returns the display name of the tier.
func (t Tier) String() string {
	switch t {
	case TierUnset:
		return "manual"
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ClassifyConfidence maps a confidence value on the 0-100 scale to a tier.
// Raw extraction output uses the 0-1 fractional scale; callers must convert
// before classification (the ingestion boundary does this once).
func ClassifyConfidence(confidence *float64) Tier {
	switch {
	case confidence == nil:
		return TierUnset
	case *confidence < 50:
		return TierLow
	case *confidence < 80:
		return TierMedium
	default:
		return TierHigh
	}
}

// Tier returns the field's confidence tier.
func (f *Field) Tier() Tier {
	return ClassifyConfidence(f.Confidence)
}

// MatchesQuery reports whether the field matches a search query.
// The match is a case-insensitive substring test across label, value,
// and id. An empty query matches every field.
func (f *Field) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(f.Label), q) ||
		strings.Contains(strings.ToLower(f.Value), q) ||
		strings.Contains(strings.ToLower(f.ID), q)
}
