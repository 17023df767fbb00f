package query

import (
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/guidesearch/catalog"
	"github.com/poiesic/guidesearch/config"
	"github.com/poiesic/guidesearch/index"
	"github.com/poiesic/guidesearch/metrics"
	"github.com/poiesic/guidesearch/search"
)

// State is the controller's position in its lifecycle.
type State int

const (
	// StateIdle means no text and no active computation.
	StateIdle State = iota
	// StateDebouncing means a keystroke arrived and the timer is running.
	StateDebouncing
	// StateComputing means ranking is in progress.
	StateComputing
	// StateSettled means the latest results have been published.
	StateSettled
)

// String returns the state's name as used in logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateComputing:
		return "computing"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Update is one settled result set delivered to subscribers. Results are
// ordered by the engine; consumers must not re-sort or re-filter them.
// Categories carries the catalog's facet labels for rendering chips.
type Update struct {
	Query      string
	Category   catalog.Category
	Results    []search.ScoredResult
	Categories []catalog.Category
	Generation uint64
}

// Controller owns query state for one interactive session. All mutation
// goes through SetQuery and SetCategory; computed results arrive through
// Subscribe callbacks. Safe for concurrent use.
type Controller struct {
	cat     *catalog.Catalog
	ranker  *search.Ranker
	cfg     *config.Config
	logger  *slog.Logger
	monitor search.Monitor
	met     *metrics.Metrics
	pool    *ants.Pool

	mu          sync.Mutex
	state       State
	text        string
	category    catalog.Category
	generation  uint64
	timer       *time.Timer
	subscribers []func(Update)
	latest      *Update
	closed      bool
}

// Option configures a Controller.
type Option func(*Controller) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor receiving callbacks at each search stage.
// Default is a no-op.
func WithMonitor(monitor search.Monitor) Option {
	return func(c *Controller) error {
		c.monitor = monitor
		return nil
	}
}

// WithMetrics attaches Prometheus collectors to the controller.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) error {
		c.met = m
		return nil
	}
}

// NewController creates a controller over a catalog and its index.
// The initial state is Idle with the full catalog as the latest update, so
// the first subscriber can render a "browse all" view immediately.
func NewController(cat *catalog.Catalog, idx *index.Index, cfg *config.Config, opts ...Option) (*Controller, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if cfg == nil {
		cfg = config.Default()
	}

	c := &Controller{
		cat:      cat,
		cfg:      cfg,
		logger:   slog.Default(),
		category: catalog.CategoryAll,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.monitor == nil {
		c.monitor = search.NopMonitor()
	}

	ranker, err := search.NewRanker(idx, cfg,
		search.WithLogger(c.logger), search.WithMonitor(c.monitor))
	if err != nil {
		return nil, err
	}
	c.ranker = ranker

	// One worker: computations are CPU-bound and bounded by catalog size,
	// and serializing them keeps publishes in generation order.
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}
	c.pool = pool

	c.latest = &Update{
		Category:   catalog.CategoryAll,
		Results:    search.BrowseResults(cat.Records()),
		Categories: cat.Categories(),
	}
	return c, nil
}

// SetQuery records a keystroke. The generation counter is bumped, any
// pending timer is restarted, and computation begins once the debounce
// interval passes without newer input. Clearing the text skips the debounce
// and republishes the full or faceted catalog.
func (c *Controller) SetQuery(text string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.generation++
	generation := c.generation
	c.text = text
	c.stopTimerLocked()

	if text == "" {
		c.state = StateIdle
		c.mu.Unlock()
		c.dispatch(generation)
		return nil
	}

	c.state = StateDebouncing
	c.timer = time.AfterFunc(c.cfg.Query.Debounce, func() {
		c.dispatch(generation)
	})
	c.mu.Unlock()
	return nil
}

// SetCategory switches the active facet. A toggle is a discrete action, so
// it bumps the generation and recomputes immediately without debouncing.
func (c *Controller) SetCategory(category catalog.Category) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.generation++
	generation := c.generation
	c.category = category
	c.stopTimerLocked()
	c.mu.Unlock()

	c.dispatch(generation)
	return nil
}

// Subscribe registers a callback for settled updates. The latest update is
// delivered right away so new subscribers don't wait for the next input.
func (c *Controller) Subscribe(fn func(Update)) {
	c.mu.Lock()
	c.subscribers = append(c.subscribers, fn)
	latest := c.latest
	c.mu.Unlock()

	if latest != nil {
		fn(*latest)
	}
}

// Latest returns the most recently published update.
func (c *Controller) Latest() (Update, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.latest == nil {
		return Update{}, false
	}
	return *c.latest, true
}

// State returns the controller's current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Generation returns the current generation counter.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Close stops the debounce timer and releases the compute pool.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.stopTimerLocked()
	c.mu.Unlock()

	c.pool.Release()
	return nil
}

// stopTimerLocked cancels a pending debounce timer. Caller holds c.mu.
func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// dispatch hands a computation for the given generation to the pool.
func (c *Controller) dispatch(generation uint64) {
	err := c.pool.Submit(func() {
		c.compute(generation)
	})
	if err != nil {
		c.logger.Warn("dropping query computation", "generation", generation, "err", err)
	}
}

// compute runs the pipeline for the state captured at generation and
// publishes the result unless a newer input arrived meanwhile.
func (c *Controller) compute(generation uint64) {
	c.mu.Lock()
	if c.closed || generation != c.generation {
		c.mu.Unlock()
		c.dropStale(generation)
		return
	}
	text := c.text
	category := c.category
	c.state = StateComputing
	c.mu.Unlock()

	start := time.Now()
	c.monitor.Start(text)

	var results []search.ScoredResult
	if text == "" {
		results = search.BrowseResults(c.cat.ByCategory(category))
	} else {
		tokens := index.Tokenize(text)
		c.monitor.AfterTokenize(tokens)
		results = c.ranker.Rank(tokens)
		results = search.FilterByCategory(results, c.cat, category)
		c.monitor.AfterFilter(results)
	}

	c.mu.Lock()
	if c.closed || generation != c.generation {
		c.mu.Unlock()
		c.dropStale(generation)
		return
	}
	if text == "" {
		c.state = StateIdle
	} else {
		c.state = StateSettled
	}
	update := Update{
		Query:      text,
		Category:   category,
		Results:    results,
		Categories: c.cat.Categories(),
		Generation: generation,
	}
	c.latest = &update
	subscribers := make([]func(Update), len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mu.Unlock()

	if c.met != nil {
		c.met.QueryDuration.Observe(time.Since(start).Seconds())
		c.met.QueriesTotal.WithLabelValues(outcome(text, results)).Inc()
	}
	c.monitor.Finish(results)

	for _, fn := range subscribers {
		fn(update)
	}
}

// dropStale records a silently discarded computation. Stale results are
// expected under rapid typing, not errors.
func (c *Controller) dropStale(generation uint64) {
	c.logger.Debug("discarding stale computation", "generation", generation)
	if c.met != nil {
		c.met.StaleDropsTotal.Inc()
	}
}

func outcome(text string, results []search.ScoredResult) string {
	switch {
	case text == "":
		return metrics.OutcomeBrowse
	case len(results) == 0:
		return metrics.OutcomeZeroResult
	default:
		return metrics.OutcomeRanked
	}
}
