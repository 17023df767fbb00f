package index

import (
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/guidesearch/catalog"
	"github.com/poiesic/guidesearch/config"
)

// Field identifies which record field a posting came from.
type Field int

const (
	// FieldTitle is the primary display string, highest weight.
	FieldTitle Field = iota + 1
	// FieldKeywords are the record's free-text tags.
	FieldKeywords
	// FieldCategory is the facet label, indexed so a query like "food" can
	// surface a category page whose title never mentions the word.
	FieldCategory
	// FieldDescription is the secondary descriptive string, lowest weight.
	FieldDescription
)

// String returns the field's name as used in logs and rendered output.
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldKeywords:
		return "keywords"
	case FieldCategory:
		return "category"
	case FieldDescription:
		return "description"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// weightOf resolves a field's static weight from configuration.
func weightOf(field Field, weights config.Weights) float64 {
	switch field {
	case FieldTitle:
		return weights.Title
	case FieldKeywords:
		return weights.Keywords
	case FieldCategory:
		return weights.Category
	default:
		return weights.Description
	}
}

// Posting associates an index token with one record/field occurrence.
type Posting struct {
	Slug   string
	Field  Field
	Weight float64
}

// Index maps each token to its postings for one catalog snapshot.
// It is built once and read-only afterwards, safe for concurrent lookups.
type Index struct {
	postings    map[string][]Posting
	vocabulary  []string
	fingerprint catalog.Fingerprint
}

// Option configures an index build.
type Option func(*builder) error

type builder struct {
	poolSize int
	logger   *slog.Logger
}

// WithPoolSize sets the worker pool size for tokenizing records.
// Zero or negative selects one worker per CPU.
func WithPoolSize(size int) Option {
	return func(b *builder) error {
		b.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// entryKey identifies one (token, record, field) occurrence. Each key
// contributes exactly one posting regardless of how often the token repeats
// within the field.
type entryKey struct {
	token string
	slug  string
	field Field
}

// recordEntries tokenizes one record. Title, description, and the category
// label are tokenized as whole strings; each keyword is tokenized
// individually so multi-word keywords still match on any contained word.
func recordEntries(record catalog.ContentRecord) map[entryKey]struct{} {
	entries := make(map[entryKey]struct{})
	add := func(field Field, text string) {
		for _, token := range Tokenize(text) {
			entries[entryKey{token: token, slug: record.Slug, field: field}] = struct{}{}
		}
	}

	add(FieldTitle, record.Title)
	add(FieldDescription, record.Description)
	add(FieldCategory, string(record.Category))
	for _, keyword := range record.Keywords {
		add(FieldKeywords, keyword)
	}
	return entries
}

// Build constructs the Index for a catalog. Records are tokenized on a
// worker pool; the merged result is deterministic regardless of completion
// order. A record without a title is rejected: the catalog is static and
// curated, so that is a data error to surface, not a condition to recover
// from.
func Build(cat *catalog.Catalog, weights config.Weights, opts ...Option) (*Index, error) {
	b := &builder{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	records := cat.Records()
	for i := range records {
		if records[i].Title == "" {
			return nil, fmt.Errorf("%w: slug %q", ErrUntitledRecord, records[i].Slug)
		}
	}

	poolSize := b.poolSize
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}
	if len(records) > 0 && poolSize > len(records) {
		poolSize = len(records)
	}
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("create index pool: %w", err)
	}
	defer pool.Release()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		merged = make(map[entryKey]struct{})
	)
	for i := range records {
		record := records[i]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			local := recordEntries(record)
			mu.Lock()
			for key := range local {
				merged[key] = struct{}{}
			}
			mu.Unlock()
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit index task: %w", err)
		}
	}
	wg.Wait()

	idx := &Index{
		postings:    make(map[string][]Posting),
		fingerprint: cat.Fingerprint(),
	}
	for key := range merged {
		idx.postings[key.token] = append(idx.postings[key.token], Posting{
			Slug:   key.slug,
			Field:  key.field,
			Weight: weightOf(key.field, weights),
		})
	}
	for token, postings := range idx.postings {
		sort.Slice(postings, func(i, j int) bool {
			if postings[i].Slug != postings[j].Slug {
				return postings[i].Slug < postings[j].Slug
			}
			return postings[i].Field < postings[j].Field
		})
		idx.vocabulary = append(idx.vocabulary, token)
	}
	sort.Strings(idx.vocabulary)

	b.logger.Debug("index built",
		"records", len(records),
		"tokens", len(idx.vocabulary),
		"fingerprint", uint64(idx.fingerprint))

	return idx, nil
}

// Postings returns the postings for an exact token, in (slug, field) order.
// The returned slice is shared and must not be mutated.
func (idx *Index) Postings(token string) []Posting {
	return idx.postings[token]
}

// Vocabulary returns every distinct token in sorted order.
// The returned slice is shared and must not be mutated.
func (idx *Index) Vocabulary() []string {
	return idx.vocabulary
}

// Tokens returns the vocabulary size.
func (idx *Index) Tokens() int {
	return len(idx.vocabulary)
}

// Fingerprint returns the fingerprint of the catalog this index was built
// from.
func (idx *Index) Fingerprint() catalog.Fingerprint {
	return idx.fingerprint
}
