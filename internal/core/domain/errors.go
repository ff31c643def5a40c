package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a document format with no registered loader.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrLoadFailure indicates a loader could not extract text from a document.
	// The underlying cause (corrupt file, encrypted PDF, bad encoding) is wrapped.
	ErrLoadFailure = errors.New("document load failure")

	// ErrEmbeddingUnavailable indicates the embedding provider errored or
	// returned vectors inconsistent with the index dimension.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrEmptyIndex indicates a search was attempted against an index
	// containing no chunks.
	ErrEmptyIndex = errors.New("empty document index")

	// ErrGenerationFailure indicates the language model call failed after
	// retries or returned empty output.
	ErrGenerationFailure = errors.New("generation failure")

	// ErrInstitutionNotFound indicates every resolution stage was exhausted
	// without producing a record.
	ErrInstitutionNotFound = errors.New("institution not found")

	// ErrLLMUnavailable indicates no LLM provider is configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrDocumentNotFound indicates a requested ingested document does not exist.
	ErrDocumentNotFound = errors.New("document not found")
)
