// Package sqlite provides a SQLite-based implementation of the
// DocumentStore driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Documents and their chunks (including
// chunk embeddings) are persisted so ingested documents survive process restarts.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Chunk embeddings are stored as little-endian
// float32 blobs.
//
// # Data Location
//
// By default, the database is stored at ~/.lexis/data/documents.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
