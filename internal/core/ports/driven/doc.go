// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - EmbeddingService: Generates vector embeddings for chunks and queries
//   - LLMService: Synthesises answers from retrieved context
//   - DocumentLoader: Extracts plain text from an uploaded document format
//   - PageFetcher: Fetches institution reference pages
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DocumentStore: Persists ingested documents and chunks so an index can
//     be rebuilt across process restarts. Without it, indexes live only in
//     memory for the session.
//   - PromptStore: User-customisable prompt templates. Without it, hardcoded
//     defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
