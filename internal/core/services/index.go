package services

import (
	"context"
	"fmt"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
	"github.com/lexislabs/lexis-cli/internal/logger"
)

// VectorIndexFactory creates an empty vector index for a new document.
// Each DocumentIndex owns its own vector index; nothing is shared.
type VectorIndexFactory func() driven.VectorIndex

// DocumentIndex is an immutable retrieval index over one document.
// It owns the document's chunks and their vectors. Once built it is
// never mutated, so concurrent searches are safe.
type DocumentIndex struct {
	documentID string
	chunks     []domain.Chunk
	byID       map[string]int
	vectors    driven.VectorIndex
	embedder   driven.EmbeddingService
}

// BuildDocumentIndex embeds the given chunks and assembles a searchable
// index. Chunks must be in document order; their embeddings are filled in.
// Embedding provider failures and dimension mismatches are reported as
// domain.ErrEmbeddingUnavailable.
func BuildDocumentIndex(
	ctx context.Context,
	embedder driven.EmbeddingService,
	vectors driven.VectorIndex,
	documentID string,
	chunks []domain.Chunk,
) (*DocumentIndex, error) {
	if embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	idx := &DocumentIndex{
		documentID: documentID,
		chunks:     chunks,
		byID:       make(map[string]int, len(chunks)),
		vectors:    vectors,
		embedder:   embedder,
	}

	if len(chunks) == 0 {
		return idx, nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	logger.Debug("Embedding %d chunks with %s", len(chunks), embedder.ModelName())
	embeddings, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: embed chunks: %w", domain.ErrEmbeddingUnavailable, err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("%w: provider returned %d embeddings for %d chunks",
			domain.ErrEmbeddingUnavailable, len(embeddings), len(chunks))
	}

	for i := range chunks {
		idx.chunks[i].Embedding = embeddings[i]
		idx.byID[chunks[i].ID] = i
		if err := vectors.Add(ctx, chunks[i].ID, embeddings[i]); err != nil {
			return nil, fmt.Errorf("%w: index chunk %d: %w", domain.ErrEmbeddingUnavailable, i, err)
		}
	}

	return idx, nil
}

// RestoreDocumentIndex assembles an index from chunks that already carry
// embeddings (loaded from a DocumentStore). No embedding calls are made
// during restore; the embedder is only used for later queries.
func RestoreDocumentIndex(
	ctx context.Context,
	embedder driven.EmbeddingService,
	vectors driven.VectorIndex,
	documentID string,
	chunks []domain.Chunk,
) (*DocumentIndex, error) {
	idx := &DocumentIndex{
		documentID: documentID,
		chunks:     chunks,
		byID:       make(map[string]int, len(chunks)),
		vectors:    vectors,
		embedder:   embedder,
	}

	for i := range chunks {
		idx.byID[chunks[i].ID] = i
		if err := vectors.Add(ctx, chunks[i].ID, chunks[i].Embedding); err != nil {
			return nil, fmt.Errorf("%w: restore chunk %d: %w", domain.ErrEmbeddingUnavailable, i, err)
		}
	}

	return idx, nil
}

// Search embeds the query and returns the k closest chunks, nearest
// first. Score ties keep document order.
func (idx *DocumentIndex) Search(ctx context.Context, query string, k int) ([]domain.ScoredChunk, error) {
	if len(idx.chunks) == 0 {
		return nil, domain.ErrEmptyIndex
	}
	if k <= 0 {
		k = domain.DefaultTopK
	}

	vec, err := idx.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %w", domain.ErrEmbeddingUnavailable, err)
	}

	hits, err := idx.vectors.Search(ctx, vec, k)
	if err != nil {
		return nil, fmt.Errorf("%w: vector search: %w", domain.ErrEmbeddingUnavailable, err)
	}

	results := make([]domain.ScoredChunk, 0, len(hits))
	for _, hit := range hits {
		i, ok := idx.byID[hit.ChunkID]
		if !ok {
			continue
		}
		results = append(results, domain.ScoredChunk{
			Chunk: idx.chunks[i],
			Score: hit.Similarity,
		})
	}
	return results, nil
}

// DocumentID returns the ID of the indexed document.
func (idx *DocumentIndex) DocumentID() string {
	return idx.documentID
}

// Chunks returns the indexed chunks in document order.
func (idx *DocumentIndex) Chunks() []domain.Chunk {
	return idx.chunks
}

// Len returns the number of indexed chunks.
func (idx *DocumentIndex) Len() int {
	return len(idx.chunks)
}

// Close releases the underlying vector index.
func (idx *DocumentIndex) Close() error {
	if idx.vectors == nil {
		return nil
	}
	return idx.vectors.Close()
}
