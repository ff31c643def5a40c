package driven

import "context"

// VectorIndex provides semantic similarity search operations.
// Backed by an exact brute-force cosine index; at the expected scale
// (hundreds to low thousands of chunks per document) exact top-K is
// both required for correctness and cheap enough.
type VectorIndex interface {
	// Add inserts a vector for the given chunk ID.
	// All vectors in one index must share the same dimension.
	Add(ctx context.Context, chunkID string, embedding []float32) error

	// Search finds the k nearest neighbours to the query vector,
	// ordered nearest-first.
	Search(ctx context.Context, query []float32, k int) ([]VectorHit, error)

	// Len returns the number of vectors in the index.
	Len() int

	// Close releases resources.
	Close() error
}

// VectorHit represents a similarity search result.
type VectorHit struct {
	// ChunkID is the matched chunk.
	ChunkID string

	// Similarity is the cosine similarity score (0-1).
	Similarity float64
}
