// Package chunker provides a fixed-size text chunking splitter.
package chunker

import (
	"github.com/google/uuid"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 200

// Splitter splits document content into fixed-size overlapping chunks.
// Boundaries are hard character cuts; consecutive chunks overlap by the
// configured amount so retrieval never loses context at a cut point.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a new splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Ensure overlap doesn't exceed chunk size
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// ChunkSize returns the configured chunk size.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Overlap returns the configured overlap.
func (s *Splitter) Overlap() int {
	return s.overlap
}

// Split splits the document content into chunks.
// Positions are 0-based and contiguous in document order; every character
// of the source appears in at least one chunk. Text shorter than the
// chunk size yields exactly one chunk; empty content yields none.
func (s *Splitter) Split(doc *domain.Document) []domain.Chunk {
	if doc.Content == "" {
		return nil
	}

	// Character-based windows, not byte-based, so multi-byte runes
	// never get cut in half.
	content := []rune(doc.Content)
	contentLen := len(content)

	stride := s.chunkSize - s.overlap
	estimatedChunks := (contentLen / stride) + 1
	chunks := make([]domain.Chunk, 0, estimatedChunks)

	position := 0
	start := 0

	for start < contentLen {
		end := start + s.chunkSize
		if end > contentLen {
			end = contentLen
		}

		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Content:    string(content[start:end]),
			Position:   position,
			Offset:     start,
		})
		position++

		if end == contentLen {
			break
		}
		start += stride
	}

	return chunks
}
