package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
	"github.com/voltaic-labs/cellspec-cli/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// Session owns the uploaded documents and the active selection.
//
// Every document exclusively owns its field slice; field operations mutate
// the stored fields of the active document directly, so edits survive
// switching away and back. The mutex preserves the single-writer invariant
// when callers run on more than one goroutine (e.g. an in-flight ingest
// completing while the UI navigates).
type Session struct {
	mu        sync.Mutex
	documents []*domain.Document
	activeID  string
	catalog   *domain.Catalog
}

// NewSession creates an empty session sharing the given catalog.
// A nil catalog falls back to the built-in one.
func NewSession(catalog *domain.Catalog) *Session {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	return &Session{catalog: catalog}
}

// AddDocument appends the document and makes it active.
// A document without an id gets a freshly generated one. The document is
// appended even if another document became active while its extraction
// was in flight; late results are never merged into the current document.
func (s *Session) AddDocument(doc *domain.Document) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}
	s.documents = append(s.documents, doc)
	s.activeID = doc.ID

	logger.Debug("session: added document %s (%s) with %d fields", doc.ID, doc.Name, len(doc.Fields))
	return doc.ID
}

// SelectDocument makes the identified document active.
// Unknown ids are ignored; the displayed fields after a successful select
// are exactly the target document's stored fields, including prior edits.
func (s *Session) SelectDocument(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(id) == nil {
		logger.Warn("session: select of unknown document %s ignored", id)
		return
	}
	s.activeID = id
}

// ActiveDocument returns the active document, nil when none is uploaded.
func (s *Session) ActiveDocument() *domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(s.activeID)
}

// Documents returns all documents in upload order.
func (s *Session) Documents() []*domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]*domain.Document, len(s.documents))
	copy(docs, s.documents)
	return docs
}

// Document returns the identified document, nil when unknown.
func (s *Session) Document(id string) *domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(id)
}

// Fields returns the active document's field set in display order.
func (s *Session) Fields() []domain.Field {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findLocked(s.activeID)
	if doc == nil {
		return nil
	}
	return doc.Fields
}

// UpdateField replaces the value of the identified field in the active
// document. The edit lands in the document's stored field set, not a
// transient view. Unknown ids are ignored.
func (s *Session) UpdateField(id, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findLocked(s.activeID)
	if doc == nil {
		return
	}
	f := doc.FieldByID(id)
	if f == nil {
		logger.Warn("session: update of unknown field %s ignored", id)
		return
	}
	f.Value = value
}

// RemoveField deletes the identified field from the active document,
// preserving the relative order of the remaining fields.
func (s *Session) RemoveField(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findLocked(s.activeID)
	if doc == nil {
		return
	}
	for i := range doc.Fields {
		if doc.Fields[i].ID == id {
			doc.Fields = append(doc.Fields[:i], doc.Fields[i+1:]...)
			return
		}
	}
}

// AddField appends a new empty field of the given catalog type to the
// active document and returns its id. Unknown type ids and the absence of
// an active document are no-ops returning the empty string.
func (s *Session) AddField(typeID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findLocked(s.activeID)
	if doc == nil {
		return ""
	}
	ft, ok := s.catalog.Lookup(typeID)
	if !ok {
		logger.Warn("session: add of unknown field type %s ignored", typeID)
		return ""
	}

	field := domain.Field{
		ID:     uuid.NewString(),
		TypeID: ft.ID,
		Label:  ft.Label,
	}
	doc.Fields = append(doc.Fields, field)
	return field.ID
}

// SearchFields returns the active document's fields matching the query.
func (s *Session) SearchFields(query string) []domain.Field {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findLocked(s.activeID)
	if doc == nil {
		return nil
	}
	var matched []domain.Field
	for i := range doc.Fields {
		if doc.Fields[i].MatchesQuery(query) {
			matched = append(matched, doc.Fields[i])
		}
	}
	return matched
}

// FilterByTier returns the active document's fields in the given tiers.
func (s *Session) FilterByTier(tiers ...domain.Tier) []domain.Field {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findLocked(s.activeID)
	if doc == nil {
		return nil
	}
	want := make(map[domain.Tier]bool, len(tiers))
	for _, t := range tiers {
		want[t] = true
	}
	var matched []domain.Field
	for i := range doc.Fields {
		if want[doc.Fields[i].Tier()] {
			matched = append(matched, doc.Fields[i])
		}
	}
	return matched
}

// Catalog returns the shared read-only field type catalog.
func (s *Session) Catalog() *domain.Catalog {
	return s.catalog
}

// findLocked returns the document with the given id (caller holds lock).
func (s *Session) findLocked(id string) *domain.Document {
	if id == "" {
		return nil
	}
	for _, doc := range s.documents {
		if doc.ID == id {
			return doc
		}
	}
	return nil
}
