package service

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/inovacc/gradients/internal/filter"
	"github.com/inovacc/gradients/internal/params"
	"github.com/inovacc/gradients/internal/store"
)

// FavoriteService owns the set of favorite gradient ids.
type FavoriteService struct {
	mu      sync.RWMutex
	adapter *store.Adapter
	log     *slog.Logger
	ids     []int
}

// NewFavoriteService loads the persisted favorites, starting empty when there
// are none.
func NewFavoriteService(adapter *store.Adapter, log *slog.Logger) *FavoriteService {
	fs := &FavoriteService{
		adapter: adapter,
		log:     serviceLogger(log, "favorites"),
	}

	if ids, ok := store.Load[[]int](adapter, params.KeyFavoriteGradients); ok {
		fs.ids = uniqueIDs(ids)
	}

	return fs
}

// Toggle removes id when it is a favorite and adds it otherwise, then
// persists the whole set. It does not check that id exists in the catalog.
func (fs *FavoriteService) Toggle(id int) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	next, added := toggleID(fs.ids, id)

	if err := fs.adapter.Save(params.KeyFavoriteGradients, next); err != nil {
		return false, err
	}

	fs.ids = next

	fs.log.Debug("favorite toggled", "id", id, "added", added)

	return added, nil
}

// Contains reports whether id is a favorite.
func (fs *FavoriteService) Contains(id int) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return slices.Contains(fs.ids, id)
}

// IDs returns the favorite ids in the order they were added.
func (fs *FavoriteService) IDs() []int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return slices.Clone(fs.ids)
}

// Set returns the favorites as a lookup set for the filter engine.
func (fs *FavoriteService) Set() map[int]struct{} {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return filter.FavoriteSet(fs.ids)
}

// toggleID returns a copy of ids with id removed when present or appended
// otherwise.
func toggleID(ids []int, id int) ([]int, bool) {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(slices.Clone(ids), i, i+1), false
	}

	return append(slices.Clone(ids), id), true
}

// uniqueIDs drops repeated ids, keeping the first occurrence of each.
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
