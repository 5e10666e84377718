package domain

import "strings"

// CautionThreshold is the confidence (0-100 scale) below which a filled
// field is flagged as cautionary by the submission gate.
const CautionThreshold = 80

// ReviewReport classifies a document's field set for submission gating.
type ReviewReport struct {
	// Blocking lists fields whose value is empty after trimming
	// whitespace. These preclude silent submission.
	Blocking []Field

	// Cautionary lists filled fields whose confidence is below the
	// caution threshold. Submission requires explicit override.
	Cautionary []Field

	// CanSubmitDirectly is true when there are no blocking and no
	// cautionary fields.
	CanSubmitDirectly bool
}

// EvaluateFields builds the review report for a field set. It does not
// perform submission; it only decides whether an explicit "submit anyway"
// confirmation is required first.
func EvaluateFields(fields []Field) ReviewReport {
	var report ReviewReport
	for _, f := range fields {
		switch {
		case strings.TrimSpace(f.Value) == "":
			report.Blocking = append(report.Blocking, f)
		case f.Confidence != nil && *f.Confidence < CautionThreshold:
			report.Cautionary = append(report.Cautionary, f)
		}
	}
	report.CanSubmitDirectly = len(report.Blocking) == 0 && len(report.Cautionary) == 0
	return report
}

// HasIssues reports whether any blocking or cautionary field exists.
func (r *ReviewReport) HasIssues() bool {
	return !r.CanSubmitDirectly
}
