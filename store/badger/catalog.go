package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/guidesearch/catalog"
	"github.com/poiesic/guidesearch/store"
)

// CatalogRepository implements store.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
}

var _ store.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	return &CatalogRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CatalogRepository has no resources of its own.
func (r *CatalogRepository) Close() error {
	return nil
}

// PutCatalog replaces the stored snapshot with the given records. The
// records must form a valid catalog; invalid content is rejected before
// anything is written, so a half-imported snapshot can't exist.
func (r *CatalogRepository) PutCatalog(ctx context.Context, records []catalog.ContentRecord) error {
	if _, err := catalog.New(records); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := deleteCatalogLocked(tx); err != nil {
			return err
		}
		for i := range records {
			key := makeCatalogRecordKey(uint32(i))
			value := store.MarshalContentRecord(&records[i])
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// LoadCatalog reads the stored snapshot in curated order and rebuilds the
// catalog, revalidating on the way in.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var records []catalog.ContentRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := store.UnmarshalContentRecord(val)
				if err != nil {
					return err
				}
				records = append(records, *record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, store.ErrCatalogMissing
	}
	return catalog.New(records)
}

// deleteCatalogLocked removes every stored catalog record within tx.
func deleteCatalogLocked(tx *badger.Txn) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(catalogRecordPrefix)
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)

	var keys [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	iter.Close()

	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
