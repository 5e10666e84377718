package driving

import (
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
)

// ReviewService gates submission of a document's field set.
type ReviewService interface {
	// Evaluate classifies the fields into blocking and cautionary
	// issues and decides whether submission needs explicit override.
	Evaluate(fields []domain.Field) domain.ReviewReport
}
