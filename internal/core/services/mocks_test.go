package services

import (
	"context"
	"sync"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
)

// --- Mock implementations shared across service tests ---

// mockEmbedder implements driven.EmbeddingService with deterministic,
// content-derived vectors so retrieval behaviour is repeatable.
type mockEmbedder struct {
	dims     int
	vectors  map[string][]float32 // optional fixed vectors per text
	embedErr error
	calls    int
}

func (m *mockEmbedder) dim() int {
	if m.dims > 0 {
		return m.dims
	}
	return 8
}

func (m *mockEmbedder) vectorFor(text string) []float32 {
	if v, ok := m.vectors[text]; ok {
		return v
	}
	// Cheap deterministic embedding: character histogram buckets.
	v := make([]float32, m.dim())
	for i, r := range text {
		v[(i+int(r))%len(v)]++
	}
	return v
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.vectorFor(text), nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = m.vectorFor(t)
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int { return m.dim() }

func (m *mockEmbedder) ModelName() string { return "mock-embed" }

func (m *mockEmbedder) Ping(_ context.Context) error { return nil }

func (m *mockEmbedder) Close() error { return nil }

// mockLLM implements driven.LLMService. It can fail a scripted number
// of times before succeeding, to exercise the retry policy.
type mockLLM struct {
	answer     string
	errs       []error // consumed one per call before answers succeed
	lastPrompt string
	calls      int
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return m.answer, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }

func (m *mockLLM) Ping(_ context.Context) error { return nil }

func (m *mockLLM) Close() error { return nil }

// mockFetcher implements driven.PageFetcher.
type mockFetcher struct {
	status int
	body   string
	err    error
	urls   []string
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (int, string, error) {
	m.urls = append(m.urls, url)
	if m.err != nil {
		return 0, "", m.err
	}
	return m.status, m.body, nil
}

// mockLoader implements driven.DocumentLoader.
type mockLoader struct {
	format  domain.DocumentFormat
	content string
	err     error
}

func (m *mockLoader) Format() domain.DocumentFormat { return m.format }

func (m *mockLoader) Load(_ context.Context, _ []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.content, nil
}

// mockDocStore is an in-memory driven.DocumentStore.
type mockDocStore struct {
	mu     sync.Mutex
	docs   map[string]domain.Document
	chunks map[string][]domain.Chunk
}

func newMockDocStore() *mockDocStore {
	return &mockDocStore{
		docs:   make(map[string]domain.Document),
		chunks: make(map[string][]domain.Chunk),
	}
}

func (m *mockDocStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.ID] = *doc
	return nil
}

func (m *mockDocStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(chunks) > 0 {
		m.chunks[chunks[0].DocumentID] = chunks
	}
	return nil
}

func (m *mockDocStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return &doc, nil
}

func (m *mockDocStore) GetChunks(_ context.Context, documentID string) ([]domain.Chunk, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chunks[documentID], nil
}

func (m *mockDocStore) DeleteDocument(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	delete(m.chunks, id)
	return nil
}

func (m *mockDocStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := make([]domain.Document, 0, len(m.docs))
	for _, d := range m.docs {
		docs = append(docs, d)
	}
	return docs, nil
}

func (m *mockDocStore) Close() error { return nil }
