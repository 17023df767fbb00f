package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/poiesic/guidesearch/search"
)

// Query outcome labels.
const (
	OutcomeRanked     = "ranked"
	OutcomeBrowse     = "browse"
	OutcomeZeroResult = "zero_result"
)

// Metrics holds all Prometheus collectors for the engine.
type Metrics struct {
	QueriesTotal      *prometheus.CounterVec
	QueryDuration     prometheus.Histogram
	StaleDropsTotal   prometheus.Counter
	TokenMatchesTotal *prometheus.CounterVec
	CatalogRecords    prometheus.Gauge
	IndexTokens       prometheus.Gauge
}

// New creates and registers all engine metrics with reg.
// A nil reg registers with the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guidesearch_queries_total",
				Help: "Total settled queries by outcome (ranked, browse, zero_result).",
			},
			[]string{"outcome"},
		),
		QueryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "guidesearch_query_duration_seconds",
				Help:    "Query computation latency in seconds.",
				Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
			},
		),
		StaleDropsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "guidesearch_stale_drops_total",
				Help: "Computations discarded because a newer keystroke arrived.",
			},
		),
		TokenMatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guidesearch_token_matches_total",
				Help: "Query-token to index-token matches by tier (exact, prefix, fuzzy).",
			},
			[]string{"tier"},
		),
		CatalogRecords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "guidesearch_catalog_records",
				Help: "Number of records in the loaded catalog.",
			},
		),
		IndexTokens: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "guidesearch_index_tokens",
				Help: "Number of distinct tokens in the built index.",
			},
		),
	}

	reg.MustRegister(
		m.QueriesTotal,
		m.QueryDuration,
		m.StaleDropsTotal,
		m.TokenMatchesTotal,
		m.CatalogRecords,
		m.IndexTokens,
	)
	return m
}

// Handler returns an HTTP handler scraping the default registry, for
// embedding applications that expose metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Observer returns a search.Monitor that records token matches by tier.
func (m *Metrics) Observer() search.Monitor {
	return &observer{metrics: m}
}

// observer adapts Metrics to the search.Monitor interface.
type observer struct {
	metrics *Metrics
}

var _ search.Monitor = (*observer)(nil)

func (o *observer) Start(_ string)           {}
func (o *observer) AfterTokenize(_ []string) {}

func (o *observer) TokenMatched(_, _ string, _ float64, tier search.Tier) {
	o.metrics.TokenMatchesTotal.WithLabelValues(tier.String()).Inc()
}

func (o *observer) AfterRank(_ []search.ScoredResult)   {}
func (o *observer) AfterFilter(_ []search.ScoredResult) {}
func (o *observer) Finish(_ []search.ScoredResult)      {}
