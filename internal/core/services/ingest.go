package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lexislabs/lexis-cli/internal/chunker"
	"github.com/lexislabs/lexis-cli/internal/core/domain"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
	"github.com/lexislabs/lexis-cli/internal/logger"
)

// Ingestor turns an uploaded document into a searchable DocumentIndex:
// extract text via a format loader, split into chunks, embed, index.
type Ingestor struct {
	loaders  map[domain.DocumentFormat]driven.DocumentLoader
	splitter *chunker.Splitter
	embedder driven.EmbeddingService
	newIndex VectorIndexFactory
}

// NewIngestor creates an ingestion pipeline from the given loaders.
func NewIngestor(
	loaders []driven.DocumentLoader,
	splitter *chunker.Splitter,
	embedder driven.EmbeddingService,
	newIndex VectorIndexFactory,
) *Ingestor {
	byFormat := make(map[domain.DocumentFormat]driven.DocumentLoader, len(loaders))
	for _, l := range loaders {
		byFormat[l.Format()] = l
	}
	return &Ingestor{
		loaders:  byFormat,
		splitter: splitter,
		embedder: embedder,
		newIndex: newIndex,
	}
}

// Ingest extracts, chunks, and indexes a document. A loader failure is
// fatal for the request; no partial index is built. Re-ingesting the
// same bytes produces a behaviourally equivalent index.
func (ing *Ingestor) Ingest(
	ctx context.Context,
	raw []byte,
	format domain.DocumentFormat,
	title string,
) (*domain.Document, *DocumentIndex, error) {
	if !format.IsValid() {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	loader, ok := ing.loaders[format]
	if !ok {
		return nil, nil, fmt.Errorf("%w: no loader registered for %q", domain.ErrUnsupportedFormat, format)
	}

	logger.Section("Document Ingestion")
	logger.Debug("Format: %s, payload: %d bytes", format, len(raw))

	content, err := loader.Load(ctx, raw)
	if err != nil {
		if errors.Is(err, domain.ErrLoadFailure) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrLoadFailure, err)
	}

	doc := &domain.Document{
		ID:        uuid.New().String(),
		Title:     title,
		Format:    format,
		Content:   content,
		CreatedAt: time.Now(),
	}

	chunks := ing.splitter.Split(doc)
	logger.Debug("Split into %d chunks", len(chunks))

	idx, err := BuildDocumentIndex(ctx, ing.embedder, ing.newIndex(), doc.ID, chunks)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Ingested document %s (%d chunks)", doc.ID, idx.Len())
	return doc, idx, nil
}

// SupportedFormats returns the formats with a registered loader.
func (ing *Ingestor) SupportedFormats() []domain.DocumentFormat {
	formats := make([]domain.DocumentFormat, 0, len(ing.loaders))
	for _, f := range []domain.DocumentFormat{domain.FormatPDF, domain.FormatTXT, domain.FormatDOCX} {
		if _, ok := ing.loaders[f]; ok {
			formats = append(formats, f)
		}
	}
	return formats
}
