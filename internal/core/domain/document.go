package domain

import "time"

// Document represents one uploaded specification document and its editable
// field set. Each document exclusively owns its fields; field slices are
// never shared between documents.
type Document struct {
	// ID is the unique identifier, generated at upload time.
	ID string

	// Name is the original filename.
	Name string

	// FileKey references the uploaded binary in the file store, used to
	// re-render the document when it is reselected.
	FileKey string

	// RemoteID is the extraction service's identifier for this upload.
	// Follow-up chat queries must carry it to address the right document.
	RemoteID string

	// Fields is the editable field set in insertion order. Edits do not
	// reorder, additions append, removals preserve the remainder's order.
	Fields []Field

	// UploadedAt is when the document was added to the session.
	UploadedAt time.Time
}

// FieldByID returns the field with the given id, or nil if absent.
func (d *Document) FieldByID(id string) *Field {
	for i := range d.Fields {
		if d.Fields[i].ID == id {
			return &d.Fields[i]
		}
	}
	return nil
}
