package driving

import (
	"context"
	"io"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
)

// IngestService orchestrates upload, remote extraction, and translation of
// the raw result into a session document.
type IngestService interface {
	// Ingest uploads the file, waits for extraction, and returns the
	// new document ready for the session. The caller is responsible for
	// not issuing a second upload while one is in flight; the service
	// performs no de-duplication. Failures are terminal for the upload:
	// domain.ErrExtractionFailed or domain.ErrMalformedResponse, with
	// no partial document produced.
	Ingest(ctx context.Context, filename string, file io.Reader) (*domain.Document, error)
}
