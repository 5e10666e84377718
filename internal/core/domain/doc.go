// Package domain defines the core business entities for cellspec.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Field: One extracted or manually added specification parameter
//   - FieldType: A catalog entry describing a known parameter
//   - Citation: The evidence backing an extracted value
//   - Document: An uploaded specification document and its field set
//   - ReviewReport: The submission-gate classification of a field set
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
