package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/guidesearch/catalog"
	"github.com/poiesic/guidesearch/store"
)

func testRecords() []catalog.ContentRecord {
	return []catalog.ContentRecord{
		{
			Slug:        "parking-in-saltaire",
			Title:       "Parking in Saltaire",
			Description: "Where to park near the village.",
			Category:    "Practical",
			Keywords:    []string{"parking", "car"},
			Image:       "/images/parking.jpg",
			Icon:        "car",
		},
		{
			Slug:        "walks-from-saltaire",
			Title:       "Walks from Saltaire",
			Description: "Riverside and canal walks.",
			Category:    "Outdoors",
			Keywords:    []string{"walking", "canal"},
		},
		{
			Slug:     "salts-mill",
			Title:    "Salts Mill",
			Category: "Attractions",
		},
	}
}

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	backend, err := OpenBackend(t.TempDir(), false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestPutLoadCatalog(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	records := testRecords()
	require.NoError(t, repo.PutCatalog(ctx, records))

	cat, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Equal(t, len(records), cat.Len())

	// Curated order survives the round trip.
	loaded := cat.Records()
	for i := range records {
		assert.Equal(t, records[i].Slug, loaded[i].Slug)
		assert.Equal(t, records[i].Title, loaded[i].Title)
		assert.Equal(t, records[i].Category, loaded[i].Category)
		assert.Equal(t, records[i].Image, loaded[i].Image)
		assert.Equal(t, records[i].Icon, loaded[i].Icon)
	}

	// The rebuilt catalog fingerprints identically to one built directly.
	direct, err := catalog.New(records)
	require.NoError(t, err)
	assert.Equal(t, direct.Fingerprint(), cat.Fingerprint())
}

func TestPutCatalog_ReplacesSnapshot(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	require.NoError(t, repo.PutCatalog(ctx, testRecords()))

	replacement := []catalog.ContentRecord{
		{Slug: "roberts-park", Title: "Roberts Park", Category: "Outdoors"},
	}
	require.NoError(t, repo.PutCatalog(ctx, replacement))

	cat, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	_, ok := cat.Get("parking-in-saltaire")
	assert.False(t, ok)
}

func TestPutCatalog_RejectsInvalid(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	require.NoError(t, repo.PutCatalog(ctx, testRecords()))

	// An invalid import leaves the previous snapshot intact.
	invalid := []catalog.ContentRecord{
		{Slug: "broken", Category: "History"},
	}
	err = repo.PutCatalog(ctx, invalid)
	assert.ErrorIs(t, err, catalog.ErrEmptyTitle)

	cat, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(testRecords()), cat.Len())
}

func TestLoadCatalog_Missing(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	_, err = repo.LoadCatalog(context.Background())
	assert.ErrorIs(t, err, store.ErrCatalogMissing)
}

func TestPutLoadCatalog_FileSystem(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)
	repo, err := NewCatalogRepository(backend)
	require.NoError(t, err)
	require.NoError(t, repo.PutCatalog(ctx, testRecords()))
	repo.Close()
	require.NoError(t, backend.Close())

	// Reopen and read the snapshot back.
	backend, err = OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()
	repo, err = NewCatalogRepository(backend)
	require.NoError(t, err)
	defer repo.Close()

	cat, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(testRecords()), cat.Len())
}
