package services

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driving"
	"github.com/lexislabs/lexis-cli/internal/logger"
	"github.com/lexislabs/lexis-cli/internal/wikipage"
)

// Ensure InstitutionResolver implements the interface.
var _ driving.InstitutionService = (*InstitutionResolver)(nil)

// pageAliases maps known abbreviations (upper-cased) to canonical
// reference-page titles, bypassing the naive title-case URL guess.
var pageAliases = map[string]string{
	"JNU":         "Jawaharlal_Nehru_University",
	"IIT BOMBAY":  "Indian_Institute_of_Technology_Bombay",
	"AIIMS DELHI": "All_India_Institute_of_Medical_Sciences,_Delhi",
}

// yearPattern matches the first 4-digit year in an infobox value.
var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// summaryParagraphs is how many qualifying body paragraphs make up a summary.
const summaryParagraphs = 4

// InstitutionResolver looks up institution facts through a staged
// fallback chain: scrape the reference page, and when that fails or
// comes back incomplete, fall through to the curated catalog. Stage
// misses are values, never errors; only full exhaustion surfaces
// domain.ErrInstitutionNotFound.
type InstitutionResolver struct {
	fetcher driven.PageFetcher
	catalog *domain.InstitutionCatalog
	baseURL string
}

// NewInstitutionResolver creates a resolver over the given fetcher and
// catalog. baseURL is the reference-page prefix the page title is
// appended to.
func NewInstitutionResolver(fetcher driven.PageFetcher, catalog *domain.InstitutionCatalog, baseURL string) *InstitutionResolver {
	if baseURL == "" {
		baseURL = domain.DefaultScrapeBaseURL
	}
	return &InstitutionResolver{
		fetcher: fetcher,
		catalog: catalog,
		baseURL: baseURL,
	}
}

// Resolve looks up an institution by name. Stages run in strict order;
// the first stage that produces a usable record wins.
func (r *InstitutionResolver) Resolve(ctx context.Context, name string) (domain.InstitutionRecord, error) {
	if strings.TrimSpace(name) == "" {
		return domain.InstitutionRecord{}, fmt.Errorf("%w: empty institution name", domain.ErrInvalidInput)
	}

	logger.Section("Institution Lookup")
	normalized := titleCase(name)

	// The alias table maps known abbreviations to the canonical page
	// title; the canonical form also drives the catalog stages, so that
	// "iit bombay" finds the entry keyed under the full official name.
	pageTitle, aliased := pageAliases[strings.ToUpper(normalized)]
	if !aliased {
		pageTitle = strings.ReplaceAll(normalized, " ", "_")
	}
	canonical := strings.ReplaceAll(pageTitle, "_", " ")
	logger.Debug("Normalized %q -> %q (page %q)", name, normalized, pageTitle)

	// Stage 1: live scrape, accepted only when the completeness gate
	// passes. Incomplete scrape data is discarded, not merged.
	if record, ok := r.scrape(ctx, pageTitle, canonical); ok {
		if record.Complete() {
			logger.Info("Resolved %q from reference page", name)
			return record, nil
		}
		logger.Debug("Scraped record for %q incomplete, falling back", name)
	}

	// Stage 2: exact catalog match on the canonical name.
	if record, ok := r.catalog.Get(canonical); ok {
		logger.Info("Resolved %q from catalog (exact)", name)
		return record, nil
	}

	// Stage 3: case-insensitive or substring alias match, first catalog
	// entry in insertion order wins.
	lower := strings.ToLower(canonical)
	for _, key := range r.catalog.Names() {
		keyLower := strings.ToLower(key)
		if lower == keyLower || strings.Contains(keyLower, lower) {
			record, _ := r.catalog.Get(key)
			logger.Info("Resolved %q from catalog (alias match on %q)", name, key)
			return record, nil
		}
	}

	return domain.InstitutionRecord{}, fmt.Errorf("%w: %q", domain.ErrInstitutionNotFound, name)
}

// scrape fetches and parses the reference page for the given title.
// Network errors, timeouts, non-200 statuses, and disambiguation pages
// all fail soft: logged, reported as "no data" to the caller.
func (r *InstitutionResolver) scrape(ctx context.Context, pageTitle, fallbackName string) (domain.InstitutionRecord, bool) {
	if r.fetcher == nil {
		return domain.InstitutionRecord{}, false
	}

	url := r.baseURL + pageTitle

	status, body, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Warn("Scrape failed for %s: %v", url, err)
		return domain.InstitutionRecord{}, false
	}
	if status != http.StatusOK {
		logger.Warn("Scrape returned status %d for %s", status, url)
		return domain.InstitutionRecord{}, false
	}

	page := wikipage.Parse(body)
	if page.Disambiguation {
		logger.Debug("%s is a disambiguation page", url)
		return domain.InstitutionRecord{}, false
	}

	record := recordFromPage(page, fallbackName)
	return record, true
}

// recordFromPage maps parsed page content onto an institution record.
// Header labels match by substring; unmatched headers are ignored.
func recordFromPage(page *wikipage.Page, fallbackName string) domain.InstitutionRecord {
	record := domain.NewInstitutionRecord(fallbackName)
	if page.Title != "" {
		record.Name = page.Title
	}

	for _, row := range page.Infobox {
		switch {
		case strings.Contains(row.Header, "Founder"):
			record.Founder = row.Value

		case strings.Contains(row.Header, "Established") || strings.Contains(row.Header, "Founded"):
			if year := yearPattern.FindString(row.Value); year != "" {
				record.FoundedYear = year
			} else {
				record.FoundedYear = row.Value
			}

		case strings.Contains(row.Header, "Campus") ||
			strings.Contains(row.Header, "Location") ||
			strings.Contains(row.Header, "Branches"):
			for _, part := range strings.Split(row.Value, ",") {
				part = strings.TrimSpace(part)
				if part != "" && !strings.Contains(part, "Campus") {
					record.Branches = append(record.Branches, part)
				}
			}

		case strings.Contains(row.Header, "Employees") || strings.Contains(row.Header, "Staff"):
			record.Employees = row.Value
		}
	}
	record.Branches = dedupe(record.Branches)

	if summary := extractSummary(page.Paragraphs); summary != "" {
		record.Summary = summary
	}

	return record
}

// extractSummary keeps the first qualifying body paragraphs, skipping
// navigation and disclaimer boilerplate.
func extractSummary(paragraphs []string) string {
	var lines []string
	for _, text := range paragraphs {
		if strings.HasPrefix(text, "Coordinates:") ||
			strings.Contains(text, "For other uses,") ||
			strings.Contains(text, "From Wikipedia, the free encyclopedia") {
			continue
		}
		lines = append(lines, text)
		if len(lines) >= summaryParagraphs {
			break
		}
	}
	return strings.Join(lines, "\n")
}

// titleCase capitalises the first letter of each word and lowers the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// dedupe removes duplicates, keeping first-seen order.
func dedupe(in []string) []string {
	if len(in) < 2 {
		return in
	}
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
