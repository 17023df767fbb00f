// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package guidesearch is the embeddable search and discovery engine of a
// local-guide content site: instant, typo-tolerant, field-weighted search
// with category facets over a small static catalog of page records.
//
// Engine ties the pieces together: it validates the catalog, builds the
// inverted index once, and answers one-shot queries. Interactive consumers
// create a query.Controller for debounced, cancellable as-you-type search.
package guidesearch

import (
	"context"
	"log/slog"

	"github.com/poiesic/guidesearch/catalog"
	"github.com/poiesic/guidesearch/config"
	"github.com/poiesic/guidesearch/index"
	"github.com/poiesic/guidesearch/metrics"
	"github.com/poiesic/guidesearch/query"
	"github.com/poiesic/guidesearch/search"
	"github.com/poiesic/guidesearch/store"
)

// Engine holds one catalog snapshot and the index built from it.
// It is read-only after construction and safe for concurrent use.
type Engine struct {
	cat    *catalog.Catalog
	idx    *index.Index
	cfg    *config.Config
	logger *slog.Logger
	met    *metrics.Metrics
	ranker *search.Ranker
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	cfg    *config.Config
	logger *slog.Logger
	met    *metrics.Metrics
}

// WithConfig overrides the default engine configuration.
func WithConfig(cfg *config.Config) Option {
	return func(o *engineOptions) {
		o.cfg = cfg
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics attaches Prometheus collectors to the engine and every
// controller created from it.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *engineOptions) {
		o.met = m
	}
}

// New builds an Engine from the site's record list. The catalog is
// validated (duplicate slugs and malformed records fail construction) and
// the index is built synchronously; at catalog scale that happens well
// within load time.
func New(records []catalog.ContentRecord, opts ...Option) (*Engine, error) {
	options := &engineOptions{
		cfg:    config.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.cfg == nil {
		options.cfg = config.Default()
	}
	if err := options.cfg.Validate(); err != nil {
		return nil, err
	}

	cat, err := catalog.New(records)
	if err != nil {
		return nil, err
	}

	idx, err := index.Build(cat, options.cfg.Weights,
		index.WithPoolSize(options.cfg.Indexing.PoolSize),
		index.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cat:    cat,
		idx:    idx,
		cfg:    options.cfg,
		logger: options.logger,
		met:    options.met,
	}

	rankerOpts := []search.Option{search.WithLogger(e.logger)}
	if e.met != nil {
		rankerOpts = append(rankerOpts, search.WithMonitor(e.met.Observer()))
		e.met.CatalogRecords.Set(float64(cat.Len()))
		e.met.IndexTokens.Set(float64(idx.Tokens()))
	}
	e.ranker, err = search.NewRanker(idx, e.cfg, rankerOpts...)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("engine ready",
		"records", cat.Len(),
		"tokens", idx.Tokens(),
		"fingerprint", uint64(cat.Fingerprint()))
	return e, nil
}

// Open loads the catalog from a repository and builds an Engine over it.
func Open(ctx context.Context, repo store.CatalogRepository, opts ...Option) (*Engine, error) {
	cat, err := repo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return New(cat.Records(), opts...)
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Index returns the engine's built index.
func (e *Engine) Index() *index.Index {
	return e.idx
}

// Categories returns the facet labels in first-appearance order.
func (e *Engine) Categories() []catalog.Category {
	return e.cat.Categories()
}

// Search answers a one-shot query: normalize, rank, facet. An empty query
// returns the full or faceted catalog in curated order with zero scores,
// so browsing and searching share one result shape. The returned order is
// the engine's contract; callers must not re-sort or re-filter.
func (e *Engine) Search(text string, category catalog.Category) []search.ScoredResult {
	if category == "" {
		category = catalog.CategoryAll
	}
	if text == "" {
		return search.BrowseResults(e.cat.ByCategory(category))
	}
	results := e.ranker.Rank(index.Tokenize(text))
	return search.FilterByCategory(results, e.cat, category)
}

// NewController creates an interactive controller over this engine's
// catalog and index, inheriting its logger and metrics.
func (e *Engine) NewController(opts ...query.Option) (*query.Controller, error) {
	base := []query.Option{query.WithLogger(e.logger)}
	if e.met != nil {
		base = append(base, query.WithMetrics(e.met), query.WithMonitor(e.met.Observer()))
	}
	return query.NewController(e.cat, e.idx, e.cfg, append(base, opts...)...)
}
