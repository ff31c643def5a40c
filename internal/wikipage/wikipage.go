// Package wikipage parses encyclopedia reference pages into the pieces
// the institution resolver needs: the main heading, the infobox rows,
// and the body paragraphs. Parsing is best-effort; a missing element is
// an absent field, never an error.
package wikipage

import (
	"html"
	"regexp"
	"strings"
)

// Page is the parsed view of a reference page.
type Page struct {
	// Title is the main heading text, empty if none was found.
	Title string

	// Disambiguation is true when the page lists multiple subjects
	// sharing a name instead of covering a single one.
	Disambiguation bool

	// Infobox holds the key-value rows of the infobox in page order.
	// Empty when the page has no infobox.
	Infobox []InfoboxRow

	// Paragraphs holds the body paragraph texts in document order.
	Paragraphs []string
}

// InfoboxRow is one header/value pair from the infobox table.
type InfoboxRow struct {
	Header string
	Value  string
}

// Pre-compiled regular expressions for page parsing.
var (
	titleTag      = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	firstHeading  = regexp.MustCompile(`(?is)<h1[^>]*id="firstHeading"[^>]*>(.*?)</h1>`)
	disambigBox   = regexp.MustCompile(`(?i)id="disambigbox"`)
	infoboxTable  = regexp.MustCompile(`(?is)<table[^>]*class="[^"]*\binfobox\b[^"]*"[^>]*>(.*?)</table>`)
	tableRow      = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr>`)
	headerCell    = regexp.MustCompile(`(?is)<th[^>]*>(.*?)</th>`)
	dataCell      = regexp.MustCompile(`(?is)<td[^>]*>(.*?)</td>`)
	paragraphTag  = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	refMarker     = regexp.MustCompile(`\[\d+\]`)
	multiSpaces   = regexp.MustCompile(`[ \t]+`)
	scriptOrStyle = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
)

// Parse extracts the structured view from raw page markup.
func Parse(markup string) *Page {
	markup = scriptOrStyle.ReplaceAllString(markup, "")

	p := &Page{}

	if m := firstHeading.FindStringSubmatch(markup); len(m) > 1 {
		p.Title = cleanText(m[1])
	}

	p.Disambiguation = isDisambiguation(markup)
	p.Infobox = parseInfobox(markup)

	for _, m := range paragraphTag.FindAllStringSubmatch(markup, -1) {
		text := cleanText(m[1])
		if text != "" {
			p.Paragraphs = append(p.Paragraphs, text)
		}
	}

	return p
}

// isDisambiguation detects a disambiguation page via the marker element
// or a page title containing "disambiguation".
func isDisambiguation(markup string) bool {
	if disambigBox.MatchString(markup) {
		return true
	}
	if m := titleTag.FindStringSubmatch(markup); len(m) > 1 {
		return strings.Contains(strings.ToLower(m[1]), "disambiguation")
	}
	return false
}

// parseInfobox pulls header/value rows out of the first infobox table.
// Rows without both a header and a data cell are skipped.
func parseInfobox(markup string) []InfoboxRow {
	m := infoboxTable.FindStringSubmatch(markup)
	if len(m) < 2 {
		return nil
	}

	var rows []InfoboxRow
	for _, tr := range tableRow.FindAllStringSubmatch(m[1], -1) {
		th := headerCell.FindStringSubmatch(tr[1])
		td := dataCell.FindStringSubmatch(tr[1])
		if len(th) < 2 || len(td) < 2 {
			continue
		}
		header := cleanText(th[1])
		value := cleanText(td[1])
		if header == "" || value == "" {
			continue
		}
		rows = append(rows, InfoboxRow{Header: header, Value: value})
	}
	return rows
}

// cleanText strips tags, decodes entities, drops citation markers, and
// collapses whitespace.
func cleanText(s string) string {
	s = allTags.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = refMarker.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = multiSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
