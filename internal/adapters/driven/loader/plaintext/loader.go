// Package plaintext loads plain text uploads.
package plaintext

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader handles plain text documents.
type Loader struct{}

// New creates a new plain text loader.
func New() *Loader {
	return &Loader{}
}

// Format returns the document format this loader handles.
func (l *Loader) Format() domain.DocumentFormat {
	return domain.FormatTXT
}

// Load returns the payload as text. The payload must be valid UTF-8.
func (l *Loader) Load(_ context.Context, raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: payload is not valid UTF-8 text", domain.ErrLoadFailure)
	}

	// Normalise line endings so chunk offsets are stable across platforms.
	content := strings.ReplaceAll(string(raw), "\r\n", "\n")
	return strings.TrimSpace(content), nil
}
