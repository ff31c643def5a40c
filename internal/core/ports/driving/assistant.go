package driving

import (
	"context"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
)

// InstitutionService resolves institution facts through the staged
// fallback chain (scrape, then curated catalog).
type InstitutionService interface {
	// Resolve looks up an institution by name.
	// Returns domain.ErrInstitutionNotFound when every stage is exhausted.
	Resolve(ctx context.Context, name string) (domain.InstitutionRecord, error)
}

// CorpusService answers questions against the fixed legal-code corpus.
type CorpusService interface {
	// Answer runs retrieval-augmented QA over the corpus.
	// The corpus index is built once, lazily, on first use.
	Answer(ctx context.Context, question string) (string, error)
}

// DocumentQAService manages uploaded documents and answers questions
// against them. Each ingested document owns an independent index.
type DocumentQAService interface {
	// Ingest extracts, chunks, and indexes an uploaded document.
	// Returns the document ID used for subsequent queries.
	Ingest(ctx context.Context, raw []byte, format domain.DocumentFormat, title string) (string, error)

	// Ask answers a question against a previously ingested document.
	Ask(ctx context.Context, documentID, question string) (string, error)

	// List returns the ingested documents available for querying.
	List(ctx context.Context) ([]domain.Document, error)
}
