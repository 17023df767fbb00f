package search

import "github.com/poiesic/guidesearch/catalog"

// FilterByCategory narrows ranked results to one category, preserving
// relative order, so relevance ranking decided before filtering survives
// it. CategoryAll returns the input unchanged. Results whose slug is not in
// the catalog are dropped; every published result must reference an
// existing record.
func FilterByCategory(results []ScoredResult, cat *catalog.Catalog, category catalog.Category) []ScoredResult {
	if category == catalog.CategoryAll {
		return results
	}
	filtered := make([]ScoredResult, 0, len(results))
	for _, result := range results {
		record, ok := cat.Get(result.Slug)
		if !ok {
			continue
		}
		if record.Category == category {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// BrowseResults converts a catalog subset into the result shape used for
// ranked output, so browsing and searching share one rendering path.
// Browse entries carry score zero and no matched fields.
func BrowseResults(records []catalog.ContentRecord) []ScoredResult {
	results := make([]ScoredResult, len(records))
	for i, record := range records {
		results[i] = ScoredResult{Slug: record.Slug}
	}
	return results
}
