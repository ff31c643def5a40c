// Package pdf loads PDF uploads by extracting their plain text.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// pdfMagic is the file signature every PDF begins with.
var pdfMagic = []byte("%PDF-")

// Loader handles PDF documents. Text extraction goes through the PDF
// parser first; files whose text layer cannot be read fall back to a
// printable-rune scan so scanned-but-OCRed documents still yield text.
type Loader struct{}

// New creates a new PDF loader.
func New() *Loader {
	return &Loader{}
}

// Format returns the document format this loader handles.
func (l *Loader) Format() domain.DocumentFormat {
	return domain.FormatPDF
}

// Load extracts the plain text from a PDF payload.
func (l *Loader) Load(_ context.Context, raw []byte) (text string, err error) {
	if !bytes.HasPrefix(raw, pdfMagic) {
		return "", fmt.Errorf("%w: payload is not a PDF file", domain.ErrLoadFailure)
	}

	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: malformed PDF: %v", domain.ErrLoadFailure, r)
		}
	}()

	text = extractText(raw)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no extractable text in PDF", domain.ErrLoadFailure)
	}
	return strings.TrimSpace(text), nil
}

// extractText reads the PDF text layer, falling back to a printable-rune
// scan when the parser cannot produce output.
func extractText(data []byte) string {
	if r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		if reader, err := r.GetPlainText(); err == nil {
			if out, err := io.ReadAll(reader); err == nil && len(out) > 0 {
				return string(out)
			}
		}
	}
	return extractPrintable(data)
}

// extractPrintable keeps printable runes and common whitespace, dropping
// everything else.
func extractPrintable(in []byte) string {
	var out bytes.Buffer
	for len(in) > 0 {
		r, size := utf8.DecodeRune(in)
		if r == utf8.RuneError && size == 1 {
			b := in[0]
			if isPrintableASCII(b) {
				out.WriteByte(b)
			}
			in = in[1:]
			continue
		}
		in = in[size:]
		if isPrintableRune(r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func isPrintableASCII(b byte) bool {
	return b == '\n' || b == '\r' || b == '\t' || (b >= 32 && b < 127)
}

func isPrintableRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return true
	}
	return r >= 32 && r < 127 || r >= 127 && r <= 0x10FFFF
}
