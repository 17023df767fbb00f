package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/guidesearch/catalog"
	"github.com/poiesic/guidesearch/config"
	"github.com/poiesic/guidesearch/index"
)

func guideCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.ContentRecord{
		{
			Slug:        "parking-in-saltaire",
			Title:       "Parking in Saltaire",
			Description: "Where to park near the village.",
			Category:    "Practical",
			Keywords:    []string{"parking", "car"},
		},
		{
			Slug:        "walks-from-saltaire",
			Title:       "Walks from Saltaire",
			Description: "Riverside and canal walks.",
			Category:    "Outdoors",
			Keywords:    []string{"walking", "canal"},
		},
		{
			Slug:        "roberts-park",
			Title:       "Roberts Park",
			Description: "Victorian park with a bandstand and parking nearby.",
			Category:    "Outdoors",
			Keywords:    []string{"picnic"},
		},
	})
	require.NoError(t, err)
	return cat
}

func guideRanker(t *testing.T, cfg *config.Config) (*Ranker, *catalog.Catalog) {
	t.Helper()
	cat := guideCatalog(t)
	idx, err := index.Build(cat, cfg.Weights)
	require.NoError(t, err)
	ranker, err := NewRanker(idx, cfg)
	require.NoError(t, err)
	return ranker, cat
}

func TestNewRanker_Validation(t *testing.T) {
	cfg := config.Default()
	cat := guideCatalog(t)
	idx, err := index.Build(cat, cfg.Weights)
	require.NoError(t, err)

	_, err = NewRanker(nil, cfg)
	assert.ErrorIs(t, err, ErrIndexRequired)

	_, err = NewRanker(idx, nil)
	assert.ErrorIs(t, err, ErrConfigRequired)
}

func TestRank_ExactTitleWins(t *testing.T) {
	ranker, _ := guideRanker(t, config.Default())

	results := ranker.Rank([]string{"parking"})
	require.NotEmpty(t, results)

	// Exact title plus keyword hit beats the description-only mention.
	assert.Equal(t, "parking-in-saltaire", results[0].Slug)
	assert.Contains(t, results[0].MatchedFields, index.FieldTitle)
	assert.Contains(t, results[0].MatchedFields, index.FieldKeywords)

	var parkScore float64
	for _, r := range results {
		if r.Slug == "roberts-park" {
			parkScore = r.Score
		}
	}
	require.NotZero(t, parkScore, "description hit should still rank")
	assert.Greater(t, results[0].Score, parkScore)
}

func TestRank_TypoToleratedTitle(t *testing.T) {
	ranker, _ := guideRanker(t, config.Default())

	// A transposed keystroke still finds the page.
	results := ranker.Rank([]string{"parkign"})
	require.NotEmpty(t, results)
	assert.Equal(t, "parking-in-saltaire", results[0].Slug)
}

func TestRank_PrefixMatchesBothRecords(t *testing.T) {
	ranker, _ := guideRanker(t, config.Default())

	results := ranker.Rank([]string{"sal"})
	slugs := make([]string, len(results))
	for i, r := range results {
		slugs[i] = r.Slug
	}
	assert.Contains(t, slugs, "parking-in-saltaire")
	assert.Contains(t, slugs, "walks-from-saltaire")
}

func TestRank_MultiTokenPartialMatch(t *testing.T) {
	ranker, _ := guideRanker(t, config.Default())

	full := ranker.Rank([]string{"canal", "walks"})
	partial := ranker.Rank([]string{"canal", "zzzzzz"})

	require.NotEmpty(t, full)
	require.NotEmpty(t, partial)
	assert.Equal(t, "walks-from-saltaire", full[0].Slug)
	assert.Equal(t, "walks-from-saltaire", partial[0].Slug)
	assert.Greater(t, full[0].Score, partial[0].Score)
}

func TestRank_BestContributionPerField(t *testing.T) {
	ranker, _ := guideRanker(t, config.Default())
	cfg := config.Default()

	// "parking" matches the title token exactly and also prefix-matches
	// nothing stronger, so the title contributes its exact score once, not
	// once per matching index token.
	results := ranker.Rank([]string{"parking"})
	require.NotEmpty(t, results)
	expected := cfg.Weights.Title + cfg.Weights.Keywords
	assert.InDelta(t, expected, results[0].Score, 1e-9)
}

func TestRank_TitleOutscoresDescription(t *testing.T) {
	cfg := config.Default()
	cat, err := catalog.New([]catalog.ContentRecord{
		{Slug: "in-title", Title: "Bandstand", Description: "A stage.", Category: "Outdoors"},
		{Slug: "in-description", Title: "The Stage", Description: "Bandstand.", Category: "Outdoors"},
	})
	require.NoError(t, err)
	idx, err := index.Build(cat, cfg.Weights)
	require.NoError(t, err)
	ranker, err := NewRanker(idx, cfg)
	require.NoError(t, err)

	results := ranker.Rank([]string{"bandstand"})
	require.Len(t, results, 2)
	assert.Equal(t, "in-title", results[0].Slug)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestRank_ScoreFloorExcludes(t *testing.T) {
	cfg := config.Default()
	cfg.Weights.Description = 0.4
	ranker, _ := guideRanker(t, cfg)

	// "village" appears only in one description; with the description
	// weight below the floor the hit is excluded outright.
	results := ranker.Rank([]string{"village"})
	assert.Empty(t, results)
}

func TestRank_ZeroResults(t *testing.T) {
	ranker, _ := guideRanker(t, config.Default())
	assert.Empty(t, ranker.Rank([]string{"zzzzzz"}))
	assert.Empty(t, ranker.Rank(nil))
}

func TestRank_Deterministic(t *testing.T) {
	ranker, _ := guideRanker(t, config.Default())

	first := ranker.Rank([]string{"saltaire", "walks"})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ranker.Rank([]string{"saltaire", "walks"}))
	}
}

func TestRank_TiesBreakBySlug(t *testing.T) {
	cfg := config.Default()
	cat, err := catalog.New([]catalog.ContentRecord{
		{Slug: "b-page", Title: "Canal", Category: "Outdoors"},
		{Slug: "a-page", Title: "Canal", Category: "Outdoors"},
	})
	require.NoError(t, err)
	idx, err := index.Build(cat, cfg.Weights)
	require.NoError(t, err)
	ranker, err := NewRanker(idx, cfg)
	require.NoError(t, err)

	results := ranker.Rank([]string{"canal"})
	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "a-page", results[0].Slug)
	assert.Equal(t, "b-page", results[1].Slug)
}

func TestFilterByCategory(t *testing.T) {
	ranker, cat := guideRanker(t, config.Default())

	results := ranker.Rank([]string{"saltaire"})
	require.NotEmpty(t, results)

	// The reserved label passes everything through untouched.
	all := FilterByCategory(results, cat, catalog.CategoryAll)
	assert.Equal(t, results, all)

	outdoors := FilterByCategory(results, cat, "Outdoors")
	for _, r := range outdoors {
		record, ok := cat.Get(r.Slug)
		require.True(t, ok)
		assert.Equal(t, catalog.Category("Outdoors"), record.Category)
	}

	assert.Empty(t, FilterByCategory(results, cat, "Nightlife"))
}

func TestBrowseResults(t *testing.T) {
	cat := guideCatalog(t)

	results := BrowseResults(cat.ByCategory("Outdoors"))
	require.Len(t, results, 2)
	assert.Equal(t, "walks-from-saltaire", results[0].Slug)
	assert.Equal(t, "roberts-park", results[1].Slug)
	for _, r := range results {
		assert.Zero(t, r.Score)
		assert.Empty(t, r.MatchedFields)
	}
}
