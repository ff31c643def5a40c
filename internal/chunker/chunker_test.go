package chunker

import (
	"strings"
	"testing"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		s := New()
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, s.chunkSize)
		}
		if s.overlap != DefaultOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultOverlap, s.overlap)
		}
	})

	t.Run("custom chunk size", func(t *testing.T) {
		s := New(WithChunkSize(500))
		if s.chunkSize != 500 {
			t.Errorf("expected chunkSize 500, got %d", s.chunkSize)
		}
	})

	t.Run("custom overlap", func(t *testing.T) {
		s := New(WithOverlap(100))
		if s.overlap != 100 {
			t.Errorf("expected overlap 100, got %d", s.overlap)
		}
	})

	t.Run("overlap exceeds chunk size", func(t *testing.T) {
		s := New(WithChunkSize(100), WithOverlap(150))
		if s.overlap >= s.chunkSize {
			t.Error("overlap should be reduced when it exceeds chunk size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		s := New(WithChunkSize(0), WithOverlap(-1))
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected default chunkSize, got %d", s.chunkSize)
		}
		if s.overlap != DefaultOverlap {
			t.Errorf("expected default overlap, got %d", s.overlap)
		}
	})
}

func TestSplit_EmptyContent(t *testing.T) {
	s := New()
	doc := &domain.Document{ID: "test-doc", Content: ""}

	chunks := s.Split(doc)
	if len(chunks) != 0 {
		t.Errorf("expected 0 chunks for empty content, got %d", len(chunks))
	}
}

func TestSplit_SmallContent(t *testing.T) {
	s := New(WithChunkSize(100), WithOverlap(20))
	doc := &domain.Document{
		ID:      "test-doc",
		Content: "This is a small piece of content.",
	}

	chunks := s.Split(doc)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk for small content, got %d", len(chunks))
	}

	if chunks[0].DocumentID != doc.ID {
		t.Errorf("expected DocumentID %q, got %q", doc.ID, chunks[0].DocumentID)
	}
	if chunks[0].Content != doc.Content {
		t.Error("expected content to match document content")
	}
	if chunks[0].Position != 0 {
		t.Errorf("expected position 0, got %d", chunks[0].Position)
	}
	if chunks[0].Offset != 0 {
		t.Errorf("expected offset 0, got %d", chunks[0].Offset)
	}
}

func TestSplit_OverlappingChunks(t *testing.T) {
	s := New(WithChunkSize(10), WithOverlap(4))
	doc := &domain.Document{
		ID:      "test-doc",
		Content: strings.Repeat("abcdef", 10), // 60 characters
	}

	chunks := s.Split(doc)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i, c := range chunks {
		if c.Position != i {
			t.Errorf("chunk %d: expected position %d, got %d", i, i, c.Position)
		}
		if i > 0 {
			// Stride is chunkSize - overlap.
			wantOffset := chunks[i-1].Offset + 6
			if c.Offset != wantOffset {
				t.Errorf("chunk %d: expected offset %d, got %d", i, wantOffset, c.Offset)
			}
			// Consecutive chunks share the overlap region.
			prevTail := chunks[i-1].Content[len(chunks[i-1].Content)-4:]
			if !strings.HasPrefix(c.Content, prevTail) {
				t.Errorf("chunk %d does not overlap with its predecessor", i)
			}
		}
	}
}

func TestSplit_FullCoverage(t *testing.T) {
	s := New(WithChunkSize(17), WithOverlap(5))
	content := strings.Repeat("0123456789", 13) + "xyz" // 133 characters
	doc := &domain.Document{ID: "test-doc", Content: content}

	chunks := s.Split(doc)

	// Every character position must be covered by at least one chunk.
	covered := make([]bool, len(content))
	for _, c := range chunks {
		for i := 0; i < len(c.Content); i++ {
			covered[c.Offset+i] = true
		}
	}
	for i, ok := range covered {
		if !ok {
			t.Fatalf("position %d not covered by any chunk", i)
		}
	}

	// Last chunk must reach the end of the content.
	last := chunks[len(chunks)-1]
	if last.Offset+len(last.Content) != len(content) {
		t.Error("last chunk does not reach end of content")
	}
}

func TestSplit_ChunkCountBound(t *testing.T) {
	const (
		size    = 50
		overlap = 10
		length  = 1037
	)
	s := New(WithChunkSize(size), WithOverlap(overlap))
	doc := &domain.Document{ID: "test-doc", Content: strings.Repeat("a", length)}

	chunks := s.Split(doc)

	// ceil((L - overlap) / (size - overlap)), within one of boundary rounding.
	want := (length - overlap + size - overlap - 1) / (size - overlap)
	got := len(chunks)
	if got < want-1 || got > want+1 {
		t.Errorf("expected about %d chunks, got %d", want, got)
	}
}

func TestSplit_MultibyteRunes(t *testing.T) {
	s := New(WithChunkSize(4), WithOverlap(1))
	doc := &domain.Document{ID: "test-doc", Content: "héllö wörld ünïcode"}

	chunks := s.Split(doc)
	for i, c := range chunks {
		if !strings.Contains(doc.Content, c.Content) {
			t.Errorf("chunk %d content %q is not a substring of source (split rune?)", i, c.Content)
		}
	}
}

func TestSplit_UniqueIDs(t *testing.T) {
	s := New(WithChunkSize(10), WithOverlap(2))
	doc := &domain.Document{ID: "test-doc", Content: strings.Repeat("x", 100)}

	chunks := s.Split(doc)
	seen := make(map[string]bool, len(chunks))
	for _, c := range chunks {
		if seen[c.ID] {
			t.Fatalf("duplicate chunk ID %q", c.ID)
		}
		seen[c.ID] = true
	}
}
