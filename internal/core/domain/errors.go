package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtractionFailed indicates the extraction service returned a
	// non-success status or the upload failed. No partial field set is
	// produced and the session is left untouched.
	ErrExtractionFailed = errors.New("document extraction failed")

	// ErrMalformedResponse indicates the extraction response parsed but
	// the specifications payload was missing or had an unexpected shape.
	// User-visible handling matches ErrExtractionFailed; it is logged
	// separately for diagnosis.
	ErrMalformedResponse = errors.New("malformed extraction response")

	// ErrUnknownFieldType indicates an add-field request named an id
	// absent from the catalog. The session swallows it (no field added).
	ErrUnknownFieldType = errors.New("unknown field type")

	// ErrUnknownDocument indicates an operation referenced a document id
	// that is not in the session. Mutations treat it as a no-op.
	ErrUnknownDocument = errors.New("unknown document")

	// ErrNoActiveDocument indicates a field operation was issued before
	// any document was uploaded.
	ErrNoActiveDocument = errors.New("no active document")

	// ErrChatUnavailable indicates the chat service is not configured.
	ErrChatUnavailable = errors.New("chat service unavailable")
)
