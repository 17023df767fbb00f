package search

import (
	"log/slog"
	"sort"

	"github.com/poiesic/guidesearch/config"
	"github.com/poiesic/guidesearch/index"
)

// ScoredResult is one ranked hit. It is ephemeral: recomputed per query and
// never persisted.
type ScoredResult struct {
	Slug  string
	Score float64
	// MatchedFields lists the fields that contributed to the score, in
	// field order. Empty for browse results.
	MatchedFields []index.Field
}

// Ranker scores records in an index against tokenized queries.
type Ranker struct {
	index   *index.Index
	cfg     *config.Config
	logger  *slog.Logger
	monitor Monitor
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor receiving callbacks at each ranking stage.
// Default is a no-op monitor.
func WithMonitor(monitor Monitor) Option {
	return func(r *Ranker) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		r.monitor = monitor
		return nil
	}
}

// NewRanker creates a ranker over a built index.
func NewRanker(idx *index.Index, cfg *config.Config, opts ...Option) (*Ranker, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	r := &Ranker{
		index:   idx,
		cfg:     cfg,
		logger:  slog.Default(),
		monitor: &noopMonitor{},
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// fieldKey identifies one (record, field) accumulator slot.
type fieldKey struct {
	slug  string
	field index.Field
}

// Rank scores every record against the query tokens and returns the hits in
// descending score order, ties broken by ascending slug. For each query
// token a record keeps its best contribution per field across all matching
// index tokens; final scores sum those contributions over fields and query
// tokens, so a two-word query where only one word matches still returns a
// ranked, lower-scored result. Records below the score floor are excluded
// outright, not ranked last.
func (r *Ranker) Rank(queryTokens []string) []ScoredResult {
	if len(queryTokens) == 0 {
		return nil
	}

	vocabulary := r.index.Vocabulary()
	scores := make(map[string]float64)
	matched := make(map[string]map[index.Field]bool)

	for _, queryToken := range queryTokens {
		best := make(map[fieldKey]float64)
		for _, indexToken := range vocabulary {
			similarity, tier := Similarity(queryToken, indexToken, r.cfg.Fuzzy)
			if tier == TierNone {
				continue
			}
			r.monitor.TokenMatched(queryToken, indexToken, similarity, tier)
			for _, posting := range r.index.Postings(indexToken) {
				key := fieldKey{slug: posting.Slug, field: posting.Field}
				if contribution := similarity * posting.Weight; contribution > best[key] {
					best[key] = contribution
				}
			}
		}
		for key, contribution := range best {
			scores[key.slug] += contribution
			if matched[key.slug] == nil {
				matched[key.slug] = make(map[index.Field]bool)
			}
			matched[key.slug][key.field] = true
		}
	}

	results := make([]ScoredResult, 0, len(scores))
	for slug, score := range scores {
		if score < r.cfg.Ranking.ScoreFloor {
			continue
		}
		results = append(results, ScoredResult{
			Slug:          slug,
			Score:         score,
			MatchedFields: sortedFields(matched[slug]),
		})
	}

	// Never rely on map iteration order: ties resolve by slug.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Slug < results[j].Slug
	})

	r.monitor.AfterRank(results)
	return results
}

func sortedFields(set map[index.Field]bool) []index.Field {
	fields := make([]index.Field, 0, len(set))
	for field := range set {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}
