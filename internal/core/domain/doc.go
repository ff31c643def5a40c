// Package domain defines the core business entities for Lexis.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An ingested document after text extraction
//   - Chunk: A retrievable unit within a document
//   - InstitutionRecord: Facts returned by an institution lookup
//   - InstitutionCatalog: The curated lookup fallback table
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
