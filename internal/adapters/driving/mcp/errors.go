// Package mcp provides an MCP (Model Context Protocol) server adapter for Lexis.
// It enables AI assistants to use institution lookup and document QA as tools.
package mcp

import "errors"

// ErrMissingInstitutionService is returned when the institution service is not provided.
var ErrMissingInstitutionService = errors.New("mcp: institution service is required")
