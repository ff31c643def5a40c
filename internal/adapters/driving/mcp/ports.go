package mcp

import (
	"github.com/lexislabs/lexis-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Institution resolves institution facts.
	Institution driving.InstitutionService

	// Corpus answers questions against the legal-code corpus.
	Corpus driving.CorpusService

	// Document manages uploaded documents and answers questions on them.
	Document driving.DocumentQAService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Institution == nil {
		return ErrMissingInstitutionService
	}
	// Corpus and Document require a configured AI stack, so they are optional;
	// their tools report errors on invocation instead.
	return nil
}
