package catalog

import (
	"bytes"
	"fmt"
)

// Catalog is the full, immutable record list for a session.
// Construction validates every record and rejects duplicate slugs;
// afterwards the value is read-only and safe for concurrent use.
type Catalog struct {
	records     []ContentRecord
	bySlug      map[string]int
	categories  []Category
	fingerprint Fingerprint
}

// New builds a Catalog from the site's record list, preserving curated
// order. It fails on the first invalid record or duplicate slug.
func New(records []ContentRecord) (*Catalog, error) {
	c := &Catalog{
		records: make([]ContentRecord, 0, len(records)),
		bySlug:  make(map[string]int, len(records)),
	}

	seenCategories := make(map[Category]bool)
	for i := range records {
		record := records[i]
		if err := ValidateContentRecord(&record); err != nil {
			return nil, err
		}
		if _, exists := c.bySlug[record.Slug]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, record.Slug)
		}

		c.bySlug[record.Slug] = len(c.records)
		c.records = append(c.records, record)

		if !seenCategories[record.Category] {
			seenCategories[record.Category] = true
			c.categories = append(c.categories, record.Category)
		}
	}

	c.fingerprint = fingerprintFromContent(c.canonicalBytes())
	return c, nil
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns every record in curated order.
// The returned slice is a copy; callers may not mutate catalog content.
func (c *Catalog) Records() []ContentRecord {
	out := make([]ContentRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the record for a slug, if present.
func (c *Catalog) Get(slug string) (ContentRecord, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return ContentRecord{}, false
	}
	return c.records[i], true
}

// Categories returns the distinct category labels in first-appearance order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ByCategory returns the records carrying the given category, in curated
// order. CategoryAll returns everything.
func (c *Catalog) ByCategory(category Category) []ContentRecord {
	if category == CategoryAll {
		return c.Records()
	}
	var out []ContentRecord
	for _, record := range c.records {
		if record.Category == category {
			out = append(out, record)
		}
	}
	return out
}

// Fingerprint returns the digest of the catalog's content. Two catalogs
// built from the same records always share a fingerprint, so anything
// derived from a catalog can assert which snapshot it was derived from.
func (c *Catalog) Fingerprint() Fingerprint {
	return c.fingerprint
}

// canonicalBytes encodes every searchable field in record order.
// Field and record separators keep adjacent values from running together.
func (c *Catalog) canonicalBytes() []byte {
	var buf bytes.Buffer
	for _, record := range c.records {
		buf.WriteString(record.Slug)
		buf.WriteByte(0x1f)
		buf.WriteString(record.Title)
		buf.WriteByte(0x1f)
		buf.WriteString(record.Description)
		buf.WriteByte(0x1f)
		buf.WriteString(string(record.Category))
		for _, keyword := range record.Keywords {
			buf.WriteByte(0x1f)
			buf.WriteString(keyword)
		}
		buf.WriteByte(0x1e)
	}
	return buf.Bytes()
}
