package domain

import "time"

// DocumentFormat identifies a supported upload format.
type DocumentFormat string

// Supported document formats.
const (
	FormatPDF  DocumentFormat = "pdf"
	FormatTXT  DocumentFormat = "txt"
	FormatDOCX DocumentFormat = "docx"
)

// IsValid returns true if the format is recognised.
func (f DocumentFormat) IsValid() bool {
	switch f {
	case FormatPDF, FormatTXT, FormatDOCX:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f DocumentFormat) String() string {
	return string(f)
}

// Document represents an ingested document.
// It is the canonical representation after text extraction.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Title is the human-readable title.
	Title string

	// Format is the declared upload format.
	Format DocumentFormat

	// Content is the full extracted text before chunking.
	Content string

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Chunk represents a retrievable unit within a document.
// Documents are split into overlapping chunks for granular retrieval.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text content of this chunk.
	Content string

	// Position is the 0-based ordinal position within the document.
	// Positions are contiguous and follow document order.
	Position int

	// Offset is the character offset of this chunk in the source text.
	Offset int

	// Embedding is the vector representation for semantic retrieval.
	Embedding []float32
}

// ScoredChunk pairs a chunk with its retrieval similarity score.
type ScoredChunk struct {
	Chunk Chunk

	// Score is the cosine similarity against the query (higher is closer).
	Score float64
}
