package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResolveInstitutionInput is the input schema for the resolve_institution tool.
type ResolveInstitutionInput struct {
	Name string `json:"name" jsonschema:"the institution name or common abbreviation to look up"`
}

// ResolveInstitutionOutput is the output schema for the resolve_institution tool.
type ResolveInstitutionOutput struct {
	Name        string   `json:"name"`
	Founder     string   `json:"founder"`
	FoundedYear string   `json:"founded_year"`
	Branches    []string `json:"branches"`
	Employees   string   `json:"employees"`
	Summary     string   `json:"summary"`
}

// AskCorpusInput is the input schema for the ask_corpus tool.
type AskCorpusInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the legal-code corpus"`
}

// AskCorpusOutput is the output schema for the ask_corpus tool.
type AskCorpusOutput struct {
	Answer string `json:"answer"`
}

// QueryDocumentInput is the input schema for the query_document tool.
type QueryDocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"the ID of a previously ingested document"`
	Question   string `json:"question" jsonschema:"the question to answer from the document"`
}

// QueryDocumentOutput is the output schema for the query_document tool.
type QueryDocumentOutput struct {
	Answer string `json:"answer"`
}

// errServiceUnavailable reports a tool whose backing service is not configured.
var errServiceUnavailable = errors.New("service not configured; run 'lexis settings' to set up AI providers")

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_institution",
		Description: "Look up facts about an educational institution: founder, founding year, campuses, staff count, and a short summary",
	}, s.handleResolveInstitution)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_corpus",
		Description: "Answer a question from the built-in legal-code corpus",
	}, s.handleAskCorpus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_document",
		Description: "Answer a question from a previously uploaded document",
	}, s.handleQueryDocument)
}

// handleResolveInstitution handles the resolve_institution tool invocation.
func (s *Server) handleResolveInstitution(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInstitutionInput,
) (*mcp.CallToolResult, ResolveInstitutionOutput, error) {
	record, err := s.ports.Institution.Resolve(ctx, input.Name)
	if err != nil {
		return nil, ResolveInstitutionOutput{}, err
	}

	return nil, ResolveInstitutionOutput{
		Name:        record.Name,
		Founder:     record.Founder,
		FoundedYear: record.FoundedYear,
		Branches:    record.Branches,
		Employees:   record.Employees,
		Summary:     record.Summary,
	}, nil
}

// handleAskCorpus handles the ask_corpus tool invocation.
func (s *Server) handleAskCorpus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskCorpusInput,
) (*mcp.CallToolResult, AskCorpusOutput, error) {
	if s.ports.Corpus == nil {
		return nil, AskCorpusOutput{}, errServiceUnavailable
	}

	answer, err := s.ports.Corpus.Answer(ctx, input.Question)
	if err != nil {
		return nil, AskCorpusOutput{}, err
	}

	return nil, AskCorpusOutput{Answer: answer}, nil
}

// handleQueryDocument handles the query_document tool invocation.
func (s *Server) handleQueryDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryDocumentInput,
) (*mcp.CallToolResult, QueryDocumentOutput, error) {
	if s.ports.Document == nil {
		return nil, QueryDocumentOutput{}, errServiceUnavailable
	}

	answer, err := s.ports.Document.Ask(ctx, input.DocumentID, input.Question)
	if err != nil {
		return nil, QueryDocumentOutput{}, err
	}

	return nil, QueryDocumentOutput{Answer: answer}, nil
}
