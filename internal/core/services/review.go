package services

import (
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
	"github.com/voltaic-labs/cellspec-cli/internal/logger"
)

// Ensure ReviewService implements the interface.
var _ driving.ReviewService = (*ReviewService)(nil)

// ReviewService gates submission of a document's field set. It only
// classifies; the submission side effect itself lives with the caller.
type ReviewService struct{}

// NewReviewService creates a review service.
func NewReviewService() *ReviewService {
	return &ReviewService{}
}

// Evaluate classifies the fields into blocking (empty value) and
// cautionary (low confidence) issues.
func (s *ReviewService) Evaluate(fields []domain.Field) domain.ReviewReport {
	report := domain.EvaluateFields(fields)
	logger.Debug("review: %d blocking, %d cautionary, direct=%t",
		len(report.Blocking), len(report.Cautionary), report.CanSubmitDirectly)
	return report
}
