package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driving"
	"github.com/lexislabs/lexis-cli/internal/logger"
)

// Ensure CorpusQA implements the interface.
var _ driving.CorpusService = (*CorpusQA)(nil)

// CorpusQA answers questions against the fixed legal-code corpus.
// The corpus index is built once, lazily, on first question, and held
// for the lifetime of the process. A failed build is retried on the
// next question rather than poisoning the service.
type CorpusQA struct {
	path     string
	ingestor *Ingestor
	qa       *RetrievalQA

	mu  sync.Mutex
	idx *DocumentIndex
}

// NewCorpusQA creates a corpus QA service over the legal-code document
// at the given path.
func NewCorpusQA(path string, ingestor *Ingestor, qa *RetrievalQA) *CorpusQA {
	if path == "" {
		path = domain.DefaultCorpusPath
	}
	return &CorpusQA{
		path:     path,
		ingestor: ingestor,
		qa:       qa,
	}
}

// Answer runs retrieval-augmented QA over the corpus.
func (c *CorpusQA) Answer(ctx context.Context, question string) (string, error) {
	idx, err := c.index(ctx)
	if err != nil {
		return "", err
	}

	// Questions are normalised to lower case before retrieval.
	return c.qa.Answer(ctx, idx, strings.ToLower(question))
}

// index returns the corpus index, building it on first use.
func (c *CorpusQA) index(ctx context.Context) (*DocumentIndex, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.idx != nil {
		return c.idx, nil
	}

	logger.Info("Building corpus index from %s", c.path)
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read corpus: %w", domain.ErrLoadFailure, err)
	}

	format := formatFromPath(c.path)
	_, idx, err := c.ingestor.Ingest(ctx, raw, format, filepath.Base(c.path))
	if err != nil {
		return nil, fmt.Errorf("build corpus index: %w", err)
	}

	c.idx = idx
	return idx, nil
}

// formatFromPath maps a file extension onto a document format,
// defaulting to PDF (the corpus ships as one).
func formatFromPath(path string) domain.DocumentFormat {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "txt":
		return domain.FormatTXT
	case "docx":
		return domain.FormatDOCX
	default:
		return domain.FormatPDF
	}
}
