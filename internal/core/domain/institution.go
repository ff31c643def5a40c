package domain

// Placeholder values for institution fields the scraper could not populate.
const (
	FieldNotAvailable = "Not Available"
	NoSummaryFound    = "No summary found."
)

// InstitutionRecord holds the facts returned for an institution lookup.
// Two sources populate it: a scraped reference page (fields may carry the
// placeholder values above) and the curated catalog (always fully populated).
type InstitutionRecord struct {
	// Name is the institution's official name.
	Name string

	// Founder is the founder's name.
	Founder string

	// FoundedYear is the founding year, usually a 4-digit string.
	FoundedYear string

	// Branches lists campus locations.
	Branches []string

	// Employees is the approximate employee count.
	Employees string

	// Summary is a short multi-line description.
	Summary string
}

// NewInstitutionRecord returns a record with placeholder field values.
func NewInstitutionRecord(name string) InstitutionRecord {
	return InstitutionRecord{
		Name:        name,
		Founder:     FieldNotAvailable,
		FoundedYear: FieldNotAvailable,
		Employees:   FieldNotAvailable,
		Summary:     NoSummaryFound,
	}
}

// Complete reports whether the record passes the completeness gate:
// a scraped record is usable only when both a summary and a founding
// year were extracted.
func (r InstitutionRecord) Complete() bool {
	return r.Summary != NoSummaryFound && r.FoundedYear != FieldNotAvailable
}

// InstitutionCatalog is a read-only mapping from canonical institution name
// to a curated record. It is built once at startup and never mutated;
// iteration follows insertion order so fallback matching is deterministic.
type InstitutionCatalog struct {
	names   []string
	records map[string]InstitutionRecord
}

// NewInstitutionCatalog builds a catalog from records keyed by Name,
// preserving the given order.
func NewInstitutionCatalog(records []InstitutionRecord) *InstitutionCatalog {
	c := &InstitutionCatalog{
		names:   make([]string, 0, len(records)),
		records: make(map[string]InstitutionRecord, len(records)),
	}
	for _, r := range records {
		if _, exists := c.records[r.Name]; exists {
			continue
		}
		c.names = append(c.names, r.Name)
		c.records[r.Name] = r
	}
	return c
}

// Get returns the record for an exact, case-sensitive canonical name.
func (c *InstitutionCatalog) Get(name string) (InstitutionRecord, bool) {
	r, ok := c.records[name]
	return r, ok
}

// Names returns the canonical names in insertion order.
func (c *InstitutionCatalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of catalog entries.
func (c *InstitutionCatalog) Len() int {
	return len(c.names)
}
