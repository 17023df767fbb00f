package search

// Monitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps during a search.
type Monitor interface {
	Start(query string)
	AfterTokenize(tokens []string)
	TokenMatched(queryToken, indexToken string, similarity float64, tier Tier)
	AfterRank(results []ScoredResult)
	AfterFilter(results []ScoredResult)
	Finish(results []ScoredResult)
}

// NopMonitor returns a Monitor that ignores every callback.
func NopMonitor() Monitor {
	return &noopMonitor{}
}

// noopMonitor is a no-op implementation of Monitor.
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                               {}
func (n *noopMonitor) AfterTokenize(_ []string)                     {}
func (n *noopMonitor) TokenMatched(_, _ string, _ float64, _ Tier)  {}
func (n *noopMonitor) AfterRank(_ []ScoredResult)                   {}
func (n *noopMonitor) AfterFilter(_ []ScoredResult)                 {}
func (n *noopMonitor) Finish(_ []ScoredResult)                      {}
