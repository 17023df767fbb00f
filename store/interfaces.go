package store

import (
	"context"

	"github.com/poiesic/guidesearch/catalog"
)

// CatalogRepository persists one catalog snapshot.
// Implementations must be safe for concurrent use.
type CatalogRepository interface {
	// PutCatalog replaces the stored snapshot with the given records,
	// preserving their order. The records are validated as a catalog
	// before anything is written.
	PutCatalog(ctx context.Context, records []catalog.ContentRecord) error

	// LoadCatalog reads the stored snapshot and rebuilds the catalog.
	// Returns ErrCatalogMissing if nothing has been stored.
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
