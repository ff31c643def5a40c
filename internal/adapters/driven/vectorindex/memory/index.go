// Package memory provides an in-memory vector index using brute-force
// cosine similarity. Exact top-K search is required for correctness at
// the expected scale (hundreds to low thousands of chunks).
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is an exact nearest-neighbour index over cosine similarity.
// It is append-only: vectors are added during index construction and
// the index is safe for concurrent searches afterwards.
type Index struct {
	mu        sync.RWMutex
	dimension int
	ids       []string
	vectors   [][]float32
}

// New creates an empty index. The dimension is fixed by the first
// vector added; later vectors must match it.
func New() *Index {
	return &Index{}
}

// Add inserts a vector for the given chunk ID.
func (idx *Index) Add(_ context.Context, chunkID string, embedding []float32) error {
	if len(embedding) == 0 {
		return fmt.Errorf("memory index: empty embedding for chunk %s", chunkID)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.dimension == 0 {
		idx.dimension = len(embedding)
	} else if len(embedding) != idx.dimension {
		return fmt.Errorf("memory index: dimension mismatch: index has %d, vector has %d",
			idx.dimension, len(embedding))
	}

	idx.ids = append(idx.ids, chunkID)
	idx.vectors = append(idx.vectors, embedding)
	return nil
}

// Search finds the k nearest neighbours to the query vector.
// Results are ordered by descending similarity; equal scores keep
// insertion order, so chunks added in document order tie-break by
// their position.
func (idx *Index) Search(_ context.Context, query []float32, k int) ([]driven.VectorHit, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(query) != idx.dimension {
		return nil, fmt.Errorf("memory index: dimension mismatch: index has %d, query has %d",
			idx.dimension, len(query))
	}
	if k <= 0 {
		return nil, nil
	}

	scores := make([]float64, len(idx.vectors))
	for i, v := range idx.vectors {
		scores[i] = cosine(query, v)
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	hits := make([]driven.VectorHit, k)
	for i := 0; i < k; i++ {
		j := order[i]
		hits[i] = driven.VectorHit{ChunkID: idx.ids[j], Similarity: scores[j]}
	}
	return hits, nil
}

// Len returns the number of vectors in the index.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.ids)
}

// Dimension returns the index vector dimension (0 while empty).
func (idx *Index) Dimension() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.dimension
}

// Close releases resources.
func (idx *Index) Close() error {
	return nil
}

// cosine computes cosine similarity between two equal-length vectors.
func cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
