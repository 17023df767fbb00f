package search

import (
	"strings"

	"github.com/poiesic/guidesearch/config"
)

// Tier classifies how a query token matched an index token.
type Tier int

const (
	// TierNone means the pair contributes nothing.
	TierNone Tier = iota
	// TierExact means the tokens are equal.
	TierExact
	// TierPrefix means the index token starts with the query token.
	TierPrefix
	// TierFuzzy means the tokens are within the edit-distance bound.
	TierFuzzy
)

// String returns the tier's name as used in logs and metrics.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierPrefix:
		return "prefix"
	case TierFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// MaxDistance returns the edit-distance bound for a query token. Tolerance
// scales with query length so short queries aren't swamped by noise.
func MaxDistance(queryLen int) int {
	return queryLen/4 + 1
}

// Similarity scores a query token against a candidate index token,
// returning a value in [0,1] and the tier it came from.
//
// Exact equality scores 1.0. A prefix hit (query at least
// cfg.MinPrefixLength long) scores cfg.PrefixSimilarity, so a user typing
// "walk" immediately surfaces "walks". Otherwise the Damerau-Levenshtein
// distance d is accepted when 1 <= d <= MaxDistance(len(query)), scoring
// 1 - d/max(len(query), len(candidate)) clamped into
// [cfg.SimilarityFloor, cfg.PrefixSimilarity]. The upper clamp keeps tier
// ordering strict: a typo can never outscore a deliberate prefix.
func Similarity(query, candidate string, cfg config.Fuzzy) (float64, Tier) {
	if query == "" || candidate == "" {
		return 0, TierNone
	}
	if query == candidate {
		return 1, TierExact
	}
	if len(query) >= cfg.MinPrefixLength && strings.HasPrefix(candidate, query) {
		return cfg.PrefixSimilarity, TierPrefix
	}

	distance := damerauLevenshtein(query, candidate)
	if distance > MaxDistance(len(query)) {
		return 0, TierNone
	}
	longest := len(query)
	if len(candidate) > longest {
		longest = len(candidate)
	}
	similarity := 1 - float64(distance)/float64(longest)
	if similarity < cfg.SimilarityFloor {
		similarity = cfg.SimilarityFloor
	}
	if similarity > cfg.PrefixSimilarity {
		similarity = cfg.PrefixSimilarity
	}
	return similarity, TierFuzzy
}

// damerauLevenshtein computes the edit distance between two strings,
// counting insertions, deletions, substitutions, and adjacent
// transpositions. Tokens are normalized ASCII by the time they get here, so
// the comparison works on bytes.
func damerauLevenshtein(a, b string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Three rolling rows: two back for transpositions.
	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := prev[j-1] + cost // substitution
			if d := prev[j] + 1; d < best { // deletion
				best = d
			}
			if d := curr[j-1] + 1; d < best { // insertion
				best = d
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if d := prev2[j-2] + 1; d < best { // transposition
					best = d
				}
			}
			curr[j] = best
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[lb]
}
