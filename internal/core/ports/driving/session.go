package driving

import (
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
)

// SessionService owns the collection of uploaded documents and the notion
// of which one is active. All field operations act on the active document
// and persist edits directly into its stored field set.
//
// Implementations serialise access internally: the UI dispatch loop is the
// only intended writer, but multi-goroutine callers must not corrupt the
// session.
type SessionService interface {
	// AddDocument appends a new document built from an extraction
	// result, makes it active, and returns its id. Results arriving
	// after the user has navigated elsewhere are still appended as new
	// documents, never merged into the current one.
	AddDocument(doc *domain.Document) string

	// SelectDocument makes the identified document active. Unknown ids
	// are ignored (no-op) and the active document is unchanged.
	SelectDocument(id string)

	// ActiveDocument returns the active document, nil when none.
	ActiveDocument() *domain.Document

	// Documents returns all documents in upload order.
	Documents() []*domain.Document

	// Document returns the identified document, nil when unknown.
	Document(id string) *domain.Document

	// Fields returns the active document's field set in display order.
	Fields() []domain.Field

	// UpdateField replaces the value of the identified field in the
	// active document. Unknown ids are ignored.
	UpdateField(id, value string)

	// RemoveField deletes the identified field from the active
	// document, preserving the order of the remainder.
	RemoveField(id string)

	// AddField appends a new empty field of the given catalog type to
	// the active document and returns its id. Unknown type ids are
	// ignored and the empty string is returned.
	AddField(typeID string) string

	// SearchFields returns the active document's fields matching the
	// query, in display order.
	SearchFields(query string) []domain.Field

	// FilterByTier returns the active document's fields in the given
	// tiers, in display order.
	FilterByTier(tiers ...domain.Tier) []domain.Field

	// Catalog returns the shared read-only field type catalog.
	Catalog() *domain.Catalog
}
