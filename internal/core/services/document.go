package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driving"
	"github.com/lexislabs/lexis-cli/internal/logger"
)

// Ensure DocumentQA implements the interface.
var _ driving.DocumentQAService = (*DocumentQA)(nil)

// DocumentQA manages uploaded documents and answers questions against
// them. Each document owns an independent index; concurrent sessions
// never share index state. With a DocumentStore configured, ingested
// documents survive restarts and their indexes are restored on demand.
type DocumentQA struct {
	ingestor *Ingestor
	qa       *RetrievalQA
	store    driven.DocumentStore // optional
	embedder driven.EmbeddingService
	newIndex VectorIndexFactory

	mu      sync.RWMutex
	indexes map[string]*DocumentIndex
	docs    map[string]domain.Document
}

// NewDocumentQA creates a document QA service. store may be nil, in
// which case indexes live only in memory for the session.
func NewDocumentQA(
	ingestor *Ingestor,
	qa *RetrievalQA,
	store driven.DocumentStore,
	embedder driven.EmbeddingService,
	newIndex VectorIndexFactory,
) *DocumentQA {
	return &DocumentQA{
		ingestor: ingestor,
		qa:       qa,
		store:    store,
		embedder: embedder,
		newIndex: newIndex,
		indexes:  make(map[string]*DocumentIndex),
		docs:     make(map[string]domain.Document),
	}
}

// Ingest extracts, chunks, and indexes an uploaded document and returns
// its ID for subsequent questions.
func (s *DocumentQA) Ingest(
	ctx context.Context,
	raw []byte,
	format domain.DocumentFormat,
	title string,
) (string, error) {
	doc, idx, err := s.ingestor.Ingest(ctx, raw, format, title)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.indexes[doc.ID] = idx
	s.docs[doc.ID] = *doc
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.SaveDocument(ctx, doc); err != nil {
			return "", fmt.Errorf("persist document: %w", err)
		}
		if err := s.store.SaveChunks(ctx, idx.Chunks()); err != nil {
			return "", fmt.Errorf("persist chunks: %w", err)
		}
		logger.Debug("Persisted document %s", doc.ID)
	}

	return doc.ID, nil
}

// Ask answers a question against a previously ingested document.
func (s *DocumentQA) Ask(ctx context.Context, documentID, question string) (string, error) {
	idx, err := s.indexFor(ctx, documentID)
	if err != nil {
		return "", err
	}
	return s.qa.Answer(ctx, idx, question)
}

// List returns the ingested documents available for querying.
func (s *DocumentQA) List(ctx context.Context) ([]domain.Document, error) {
	if s.store != nil {
		return s.store.ListDocuments(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, d)
	}
	return docs, nil
}

// indexFor returns the document's index, restoring it from the store
// when it is not held in memory.
func (s *DocumentQA) indexFor(ctx context.Context, documentID string) (*DocumentIndex, error) {
	s.mu.RLock()
	idx, ok := s.indexes[documentID]
	s.mu.RUnlock()
	if ok {
		return idx, nil
	}

	if s.store == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDocumentNotFound, documentID)
	}

	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDocumentNotFound, documentID)
	}
	chunks, err := s.store.GetChunks(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load chunks for %q: %w", documentID, err)
	}

	logger.Debug("Restoring index for document %s (%d chunks)", documentID, len(chunks))
	idx, err = RestoreDocumentIndex(ctx, s.embedder, s.newIndex(), documentID, chunks)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.indexes[documentID] = idx
	s.docs[documentID] = *doc
	s.mu.Unlock()

	return idx, nil
}
