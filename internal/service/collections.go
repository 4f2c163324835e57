package service

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/gradients/internal/model"
	"github.com/inovacc/gradients/internal/params"
	"github.com/inovacc/gradients/internal/store"
)

// Catalog is the read side of the gradient catalog that collections resolve
// their members against.
type Catalog interface {
	Get(id int) (model.Gradient, bool)
	List() []model.Gradient
}

// CollectionService owns the user's gradient collections.
type CollectionService struct {
	mu          sync.RWMutex
	adapter     *store.Adapter
	catalog     Catalog
	log         *slog.Logger
	collections []model.Collection

	newID func() string
	now   func() time.Time
}

// NewCollectionService loads the persisted collections, starting empty when
// there are none.
func NewCollectionService(adapter *store.Adapter, catalog Catalog, log *slog.Logger) *CollectionService {
	cs := &CollectionService{
		adapter: adapter,
		catalog: catalog,
		log:     serviceLogger(log, "collections"),
		newID:   uuid.NewString,
		now:     time.Now,
	}

	if collections, ok := store.Load[[]model.Collection](adapter, params.KeyGradientCollections); ok {
		cs.collections = collections
	}

	return cs
}

// List returns every collection in creation order.
func (cs *CollectionService) List() []model.Collection {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	return cloneCollections(cs.collections)
}

// Get returns the collection with id.
func (cs *CollectionService) Get(id string) (model.Collection, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	i := cs.index(id)
	if i < 0 {
		return model.Collection{}, collectionNotFound(id)
	}

	return cloneCollection(cs.collections[i]), nil
}

// FindByName returns the first collection whose name matches, ignoring case
// and surrounding whitespace.
func (cs *CollectionService) FindByName(name string) (model.Collection, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	want := strings.TrimSpace(name)

	for _, c := range cs.collections {
		if strings.EqualFold(c.Name, want) {
			return cloneCollection(c), nil
		}
	}

	return model.Collection{}, collectionNotFound(name)
}

// Create adds an empty collection.
func (cs *CollectionService) Create(draft model.CollectionDraft) (model.Collection, error) {
	c, err := cs.build(draft, model.DefaultCollectionColor)
	if err != nil {
		return model.Collection{}, err
	}

	return cs.insert(c)
}

// CreateWithMember adds a collection that already holds gradientID. Without a
// draft color it takes the gradient's first color.
func (cs *CollectionService) CreateWithMember(draft model.CollectionDraft, gradientID int) (model.Collection, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return model.Collection{}, emptyCollectionName()
	}

	g, ok := cs.catalog.Get(gradientID)
	if !ok {
		return model.Collection{}, gradientNotFound(gradientID)
	}

	fallback := g.FirstColor()
	if fallback == "" {
		fallback = model.DefaultCollectionColor
	}

	c, err := cs.build(draft, fallback)
	if err != nil {
		return model.Collection{}, err
	}

	c.GradientIDs = []int{gradientID}

	return cs.insert(c)
}

func (cs *CollectionService) build(draft model.CollectionDraft, fallbackColor string) (model.Collection, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return model.Collection{}, emptyCollectionName()
	}

	color := strings.TrimSpace(draft.Color)
	if color == "" {
		color = fallbackColor
	}

	return model.Collection{
		ID:          cs.newID(),
		Name:        name,
		Description: strings.TrimSpace(draft.Description),
		GradientIDs: []int{},
		Color:       color,
		CreatedAt:   cs.now(),
	}, nil
}

func (cs *CollectionService) insert(c model.Collection) (model.Collection, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	next := append(cloneCollections(cs.collections), c)
	if err := cs.commit(next); err != nil {
		return model.Collection{}, err
	}

	cs.log.Debug("collection created", "id", c.ID, "name", c.Name, "members", len(c.GradientIDs))

	return cloneCollection(c), nil
}

// Update replaces the fields patch supplies. The resulting name must not be
// empty.
func (cs *CollectionService) Update(id string, patch model.CollectionPatch) (model.Collection, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	i := cs.index(id)
	if i < 0 {
		return model.Collection{}, collectionNotFound(id)
	}

	updated := cloneCollection(cs.collections[i])

	if patch.Name != nil {
		updated.Name = strings.TrimSpace(*patch.Name)
	}

	if patch.Description != nil {
		updated.Description = strings.TrimSpace(*patch.Description)
	}

	if patch.Color != nil {
		updated.Color = strings.TrimSpace(*patch.Color)
	}

	if updated.Name == "" {
		return model.Collection{}, emptyCollectionName()
	}

	next := cloneCollections(cs.collections)
	next[i] = updated

	if err := cs.commit(next); err != nil {
		return model.Collection{}, err
	}

	cs.log.Debug("collection updated", "id", id, "name", updated.Name)

	return cloneCollection(updated), nil
}

// Delete removes the collection with id. Deleting a missing id is a no-op.
func (cs *CollectionService) Delete(id string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	next := slices.DeleteFunc(cloneCollections(cs.collections), func(c model.Collection) bool {
		return c.ID == id
	})

	if err := cs.commit(next); err != nil {
		return err
	}

	cs.log.Debug("collection deleted", "id", id)

	return nil
}

// ToggleMember adds gradientID to the collection or removes it when already
// present. Gradient existence is not checked.
func (cs *CollectionService) ToggleMember(collectionID string, gradientID int) (bool, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	i := cs.index(collectionID)
	if i < 0 {
		return false, collectionNotFound(collectionID)
	}

	next := cloneCollections(cs.collections)

	var added bool
	next[i].GradientIDs, added = toggleID(next[i].GradientIDs, gradientID)

	if err := cs.commit(next); err != nil {
		return false, err
	}

	cs.log.Debug("collection membership toggled", "collection", collectionID, "gradient", gradientID, "added", added)

	return added, nil
}

// MembersOf resolves the collection's members in catalog order. Ids whose
// gradient no longer exists are skipped.
func (cs *CollectionService) MembersOf(collectionID string) ([]model.Gradient, error) {
	c, err := cs.Get(collectionID)
	if err != nil {
		return nil, err
	}

	out := []model.Gradient{}

	for _, g := range cs.catalog.List() {
		if c.Has(g.ID) {
			out = append(out, g)
		}
	}

	return out, nil
}

// Containing returns the collections that include gradientID.
func (cs *CollectionService) Containing(gradientID int) []model.Collection {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	var out []model.Collection

	for _, c := range cs.collections {
		if c.Has(gradientID) {
			out = append(out, cloneCollection(c))
		}
	}

	return out
}

// commit persists the full list and swaps it in. Must hold cs.mu.
func (cs *CollectionService) commit(next []model.Collection) error {
	if err := cs.adapter.Save(params.KeyGradientCollections, next); err != nil {
		return err
	}

	cs.collections = next

	return nil
}

func (cs *CollectionService) index(id string) int {
	return slices.IndexFunc(cs.collections, func(c model.Collection) bool { return c.ID == id })
}

func emptyCollectionName() error {
	return &ValidationError{Field: "name", Message: "please enter a collection name"}
}

func cloneCollection(c model.Collection) model.Collection {
	c.GradientIDs = slices.Clone(c.GradientIDs)
	return c
}

func cloneCollections(in []model.Collection) []model.Collection {
	out := make([]model.Collection, len(in))
	for i, c := range in {
		out[i] = cloneCollection(c)
	}

	return out
}
