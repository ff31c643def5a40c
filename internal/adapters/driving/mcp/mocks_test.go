package mcp

import (
	"context"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
)

// mockInstitutionService is a mock implementation of driving.InstitutionService.
type mockInstitutionService struct {
	record domain.InstitutionRecord
	err    error
}

func (m *mockInstitutionService) Resolve(_ context.Context, _ string) (domain.InstitutionRecord, error) {
	return m.record, m.err
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	answer string
	err    error
}

func (m *mockCorpusService) Answer(_ context.Context, _ string) (string, error) {
	return m.answer, m.err
}

// mockDocumentQAService is a mock implementation of driving.DocumentQAService.
type mockDocumentQAService struct {
	documents []domain.Document
	docID     string
	answer    string
	err       error
}

func (m *mockDocumentQAService) Ingest(_ context.Context, _ []byte, _ domain.DocumentFormat, _ string) (string, error) {
	return m.docID, m.err
}

func (m *mockDocumentQAService) Ask(_ context.Context, _, _ string) (string, error) {
	return m.answer, m.err
}

func (m *mockDocumentQAService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}
