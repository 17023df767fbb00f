package query

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/guidesearch/catalog"
	"github.com/poiesic/guidesearch/config"
	"github.com/poiesic/guidesearch/index"
	"github.com/poiesic/guidesearch/search"
)

func testCatalog(t *testing.T) *catalog.Catalog {
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
			Description: "Victorian park with a bandstand.",
			Category:    "Outdoors",
			Keywords:    []string{"picnic"},
		},
	})
	require.NoError(t, err)
	return cat
}

func testController(t *testing.T, opts ...Option) (*Controller, *catalog.Catalog) {
	t.Helper()
	cfg := config.Default()
	cfg.Query.Debounce = 5 * time.Millisecond

	cat := testCatalog(t)
	idx, err := index.Build(cat, cfg.Weights)
	require.NoError(t, err)

	c, err := NewController(cat, idx, cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, cat
}

// collector records every update published to a subscriber.
type collector struct {
	mu      sync.Mutex
	updates []Update
}

func (r *collector) record(u Update) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, u)
}

func (r *collector) all() []Update {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Update, len(r.updates))
	copy(out, r.updates)
	return out
}

func TestNewController_Validation(t *testing.T) {
	cfg := config.Default()
	cat := testCatalog(t)
	idx, err := index.Build(cat, cfg.Weights)
	require.NoError(t, err)

	_, err = NewController(nil, idx, cfg)
	assert.ErrorIs(t, err, ErrCatalogRequired)

	_, err = NewController(cat, nil, cfg)
	assert.ErrorIs(t, err, ErrIndexRequired)
}

func TestController_InitialBrowseState(t *testing.T) {
	c, cat := testController(t)

	assert.Equal(t, StateIdle, c.State())

	latest, ok := c.Latest()
	require.True(t, ok)
	assert.Empty(t, latest.Query)
	assert.Equal(t, catalog.CategoryAll, latest.Category)
	assert.Len(t, latest.Results, cat.Len())
	assert.Equal(t, cat.Categories(), latest.Categories)

	// Browse results follow curated order with zero scores.
	assert.Equal(t, "parking-in-saltaire", latest.Results[0].Slug)
	assert.Zero(t, latest.Results[0].Score)
}

func TestController_SubscribeDeliversLatest(t *testing.T) {
	c, cat := testController(t)

	col := &collector{}
	c.Subscribe(col.record)

	updates := col.all()
	require.Len(t, updates, 1)
	assert.Len(t, updates[0].Results, cat.Len())
}

func TestController_QuerySettles(t *testing.T) {
	c, _ := testController(t)

	require.NoError(t, c.SetQuery("parking"))
	assert.Equal(t, StateDebouncing, c.State())

	require.Eventually(t, func() bool {
		latest, ok := c.Latest()
		return ok && latest.Query == "parking"
	}, time.Second, 2*time.Millisecond)

	latest, _ := c.Latest()
	require.NotEmpty(t, latest.Results)
	assert.Equal(t, "parking-in-saltaire", latest.Results[0].Slug)
	assert.Equal(t, StateSettled, c.State())
}

func TestController_RapidTypingPublishesLastQuery(t *testing.T) {
	c, _ := testController(t)

	col := &collector{}
	c.Subscribe(col.record)

	for _, text := range []string{"p", "pa", "par", "park", "parkign"} {
		require.NoError(t, c.SetQuery(text))
	}

	require.Eventually(t, func() bool {
		latest, ok := c.Latest()
		return ok && latest.Query == "parkign"
	}, time.Second, 2*time.Millisecond)

	// Every published update carries the controller's own generation at
	// publish time, so none of the overtaken keystrokes appear.
	for _, u := range col.all() {
		if u.Query != "" && u.Query != "parkign" {
			t.Errorf("intermediate keystroke %q was published", u.Query)
		}
	}

	latest, _ := c.Latest()
	require.NotEmpty(t, latest.Results)
	assert.Equal(t, "parking-in-saltaire", latest.Results[0].Slug)
}

func TestController_ClearSkipsDebounce(t *testing.T) {
	c, cat := testController(t)

	require.NoError(t, c.SetQuery("parking"))
	require.Eventually(t, func() bool {
		latest, ok := c.Latest()
		return ok && latest.Query == "parking"
	}, time.Second, 2*time.Millisecond)

	require.NoError(t, c.SetQuery(""))
	require.Eventually(t, func() bool {
		latest, ok := c.Latest()
		return ok && latest.Query == "" && len(latest.Results) == cat.Len()
	}, time.Second, 2*time.Millisecond)

	assert.Equal(t, StateIdle, c.State())
}

func TestController_CategoryTogglesImmediately(t *testing.T) {
	c, _ := testController(t)

	require.NoError(t, c.SetCategory("Outdoors"))
	require.Eventually(t, func() bool {
		latest, ok := c.Latest()
		return ok && latest.Category == "Outdoors"
	}, time.Second, 2*time.Millisecond)

	latest, _ := c.Latest()
	require.Len(t, latest.Results, 2)
	assert.Equal(t, "walks-from-saltaire", latest.Results[0].Slug)
	assert.Equal(t, "roberts-park", latest.Results[1].Slug)
}

func TestController_QueryPlusCategory(t *testing.T) {
	c, _ := testController(t)

	require.NoError(t, c.SetCategory("Outdoors"))
	require.NoError(t, c.SetQuery("saltaire"))

	require.Eventually(t, func() bool {
		latest, ok := c.Latest()
		return ok && latest.Query == "saltaire" && latest.Category == "Outdoors"
	}, time.Second, 2*time.Millisecond)

	latest, _ := c.Latest()
	require.Len(t, latest.Results, 1)
	assert.Equal(t, "walks-from-saltaire", latest.Results[0].Slug)
}

// slowMonitor stalls the first ranking pass so a newer keystroke can
// overtake it.
type slowMonitor struct {
	search.Monitor
	mu    sync.Mutex
	delay time.Duration
	used  bool
}

func newSlowMonitor(delay time.Duration) *slowMonitor {
	return &slowMonitor{Monitor: search.NopMonitor(), delay: delay}
}

func (m *slowMonitor) AfterTokenize(tokens []string) {
	m.mu.Lock()
	first := !m.used
	m.used = true
	m.mu.Unlock()
	if first {
		time.Sleep(m.delay)
	}
}

func TestController_StaleResultNeverPublished(t *testing.T) {
	monitor := newSlowMonitor(50 * time.Millisecond)
	c, _ := testController(t, WithMonitor(monitor))

	col := &collector{}
	c.Subscribe(col.record)

	require.NoError(t, c.SetQuery("walks"))

	// Wait for the first computation to enter the pipeline, then overtake
	// it while it is stalled in the monitor.
	require.Eventually(t, func() bool {
		return c.State() == StateComputing
	}, time.Second, time.Millisecond)
	require.NoError(t, c.SetQuery("parking"))

	require.Eventually(t, func() bool {
		latest, ok := c.Latest()
		return ok && latest.Query == "parking"
	}, time.Second, 2*time.Millisecond)

	for _, u := range col.all() {
		assert.NotEqual(t, "walks", u.Query, "stale result was published")
	}
}

func TestController_GenerationMonotonic(t *testing.T) {
	c, _ := testController(t)

	before := c.Generation()
	require.NoError(t, c.SetQuery("a"))
	require.NoError(t, c.SetCategory("Outdoors"))
	require.NoError(t, c.SetQuery(""))
	assert.Equal(t, before+3, c.Generation())
}

func TestController_Close(t *testing.T) {
	c, _ := testController(t)

	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.SetQuery("parking"), ErrClosed)
	assert.ErrorIs(t, c.SetCategory("Outdoors"), ErrClosed)

	// Closing twice is fine.
	assert.NoError(t, c.Close())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "debouncing", StateDebouncing.String())
	assert.Equal(t, "computing", StateComputing.String())
	assert.Equal(t, "settled", StateSettled.String())
}
