package driven

import (
	"context"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
)

// DocumentLoader extracts plain text from one upload format.
// Each loader handles a single declared format (pdf, txt, docx).
type DocumentLoader interface {
	// Format returns the document format this loader handles.
	Format() domain.DocumentFormat

	// Load extracts the full plain text from the raw payload.
	// A corrupt or unreadable payload is reported as an error wrapping
	// domain.ErrLoadFailure; no partial text is returned.
	Load(ctx context.Context, raw []byte) (string, error)
}
