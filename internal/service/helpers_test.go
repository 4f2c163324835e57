package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/inovacc/gradients/internal/store"
)

// failingStore rejects every write.
type failingStore struct {
	*store.Memory
}

func (failingStore) Put(string, []byte) error {
	return errors.New("disk full")
}

type fixture struct {
	blobs       *store.Memory
	adapter     *store.Adapter
	catalog     *CatalogService
	favorites   *FavoriteService
	collections *CollectionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return reopen(t, store.NewMemory())
}

// reopen builds fresh services over blobs, as a restart would.
func reopen(t *testing.T, blobs *store.Memory) *fixture {
	t.Helper()

	adapter := store.NewAdapter(blobs, nil)
	catalog := NewCatalogService(adapter, nil)
	collections := NewCollectionService(adapter, catalog, nil)

	seq := 0
	collections.newID = func() string {
		seq++
		return fmt.Sprintf("col-%d", seq)
	}
	collections.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, seq, 0, time.UTC)
	}

	return &fixture{
		blobs:       blobs,
		adapter:     adapter,
		catalog:     catalog,
		favorites:   NewFavoriteService(adapter, nil),
		collections: collections,
	}
}
