package driven

import (
	"context"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
)

// PageSource reports the native pixel dimensions of document pages.
// It stands in for the page-rendering collaborator: overlay geometry can
// only be computed once the renderer has loaded a page and measured it.
type PageSource interface {
	// PageSize returns the native dimensions of a 1-based page of the
	// stored file. Returns domain.ErrNotFound when the file or page is
	// unknown.
	PageSize(ctx context.Context, fileID string, page int) (domain.PageSize, error)

	// PageCount returns the number of pages in the stored file.
	PageCount(ctx context.Context, fileID string) (int, error)
}
