package service

import (
	"testing"
	"time"

	"github.com/inovacc/gradients/internal/model"
	"github.com/inovacc/gradients/internal/params"
	"github.com/inovacc/gradients/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestCollections_Create(t *testing.T) {
	f := newFixture(t)

	c, err := f.collections.Create(model.CollectionDraft{Name: " Warm ", Description: " cozy ", Color: "#fa709a"})
	require.NoError(t, err)

	assert.Equal(t, "col-1", c.ID)
	assert.Equal(t, "Warm", c.Name)
	assert.Equal(t, "cozy", c.Description)
	assert.Equal(t, "#fa709a", c.Color)
	assert.Empty(t, c.GradientIDs)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 1, 0, time.UTC), c.CreatedAt)

	assert.Equal(t, []model.Collection{c}, f.collections.List())
}

func TestCollections_CreateDefaultColor(t *testing.T) {
	f := newFixture(t)

	c, err := f.collections.Create(model.CollectionDraft{Name: "Plain"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCollectionColor, c.Color)
}

func TestCollections_DefaultIDsAreUnique(t *testing.T) {
	cs := NewCollectionService(store.NewAdapter(store.NewMemory(), nil), NewCatalogService(store.NewAdapter(store.NewMemory(), nil), nil), nil)

	seen := map[string]bool{}

	for range 50 {
		c, err := cs.Create(model.CollectionDraft{Name: "same tick"})
		require.NoError(t, err)
		require.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestCollections_RejectEmptyNames(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		f := newFixture(t)

		_, err := f.collections.Create(model.CollectionDraft{Name: name})
		assert.True(t, IsValidation(err), "Create(%q)", name)

		_, err = f.collections.CreateWithMember(model.CollectionDraft{Name: name}, 1)
		assert.True(t, IsValidation(err), "CreateWithMember(%q)", name)

		assert.Empty(t, f.collections.List())

		c, err := f.collections.Create(model.CollectionDraft{Name: "Keep"})
		require.NoError(t, err)

		_, err = f.collections.Update(c.ID, model.CollectionPatch{Name: ptr(name)})
		assert.True(t, IsValidation(err), "Update(%q)", name)

		got, err := f.collections.Get(c.ID)
		require.NoError(t, err)
		assert.Equal(t, c, got, "failed update must not change the collection")
	}
}

func TestCollections_CreateWithMember(t *testing.T) {
	f := newFixture(t)

	c, err := f.collections.CreateWithMember(model.CollectionDraft{Name: "Quick"}, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, c.GradientIDs)
	assert.Equal(t, "#fa709a", c.Color, "defaults to the gradient's first color")

	c, err = f.collections.CreateWithMember(model.CollectionDraft{Name: "Tinted", Color: "#000000"}, 7)
	require.NoError(t, err)
	assert.Equal(t, "#000000", c.Color)

	_, err = f.collections.CreateWithMember(model.CollectionDraft{Name: "Ghost"}, 404)
	assert.True(t, IsNotFound(err))
	assert.Len(t, f.collections.List(), 2)
}

type colorlessCatalog struct{}

func (colorlessCatalog) Get(id int) (model.Gradient, bool) {
	return model.Gradient{ID: id, Name: "bare"}, true
}

func (colorlessCatalog) List() []model.Gradient { return nil }

func TestCollections_CreateWithMemberFallbackColor(t *testing.T) {
	cs := NewCollectionService(store.NewAdapter(store.NewMemory(), nil), colorlessCatalog{}, nil)

	c, err := cs.CreateWithMember(model.CollectionDraft{Name: "Bare"}, 3)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCollectionColor, c.Color)
}

func TestCollections_Update(t *testing.T) {
	f := newFixture(t)

	c, err := f.collections.Create(model.CollectionDraft{Name: "Old", Description: "d", Color: "#111111"})
	require.NoError(t, err)
	_, err = f.collections.ToggleMember(c.ID, 2)
	require.NoError(t, err)

	updated, err := f.collections.Update(c.ID, model.CollectionPatch{Name: ptr("New"), Color: ptr("#222222")})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "d", updated.Description, "unsupplied fields are kept")
	assert.Equal(t, "#222222", updated.Color)
	assert.Equal(t, []int{2}, updated.GradientIDs)
	assert.Equal(t, c.CreatedAt, updated.CreatedAt)

	updated, err = f.collections.Update(c.ID, model.CollectionPatch{Description: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Description)

	_, err = f.collections.Update("missing", model.CollectionPatch{Name: ptr("x")})
	assert.True(t, IsNotFound(err))
}

func TestCollections_DeleteIsIdempotent(t *testing.T) {
	f := newFixture(t)

	c, err := f.collections.Create(model.CollectionDraft{Name: "Gone"})
	require.NoError(t, err)

	require.NoError(t, f.collections.Delete(c.ID))
	require.NoError(t, f.collections.Delete(c.ID))
	require.NoError(t, f.collections.Delete("never-existed"))

	assert.Empty(t, f.collections.List())
	assert.Len(t, f.catalog.List(), model.BuiltinCount, "gradients are untouched")
}

func TestCollections_ToggleMember(t *testing.T) {
	f := newFixture(t)

	c, err := f.collections.Create(model.CollectionDraft{Name: "Set"})
	require.NoError(t, err)

	added, err := f.collections.ToggleMember(c.ID, 4)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = f.collections.ToggleMember(c.ID, 4)
	require.NoError(t, err)
	assert.False(t, added)

	got, err := f.collections.Get(c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.GradientIDs, "double toggle restores the previous membership")

	_, err = f.collections.ToggleMember("missing", 4)
	assert.True(t, IsNotFound(err))
}

func TestCollections_MembersOfSkipsMissing(t *testing.T) {
	f := newFixture(t)

	c, err := f.collections.Create(model.CollectionDraft{Name: "Mixed"})
	require.NoError(t, err)

	for _, id := range []int{5, 999, 1} {
		_, err := f.collections.ToggleMember(c.ID, id)
		require.NoError(t, err)
	}

	members, err := f.collections.MembersOf(c.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, 1, members[0].ID, "members follow catalog order")
	assert.Equal(t, 5, members[1].ID)

	_, err = f.collections.MembersOf("missing")
	assert.True(t, IsNotFound(err))
}

func TestCollections_WarmScenario(t *testing.T) {
	f := newFixture(t)

	warm, err := f.collections.Create(model.CollectionDraft{Name: "Warm", Color: "#fa709a"})
	require.NoError(t, err)

	_, err = f.collections.ToggleMember(warm.ID, 2)
	require.NoError(t, err)

	found, err := f.collections.FindByName("warm")
	require.NoError(t, err)

	members, err := f.collections.MembersOf(found.ID)
	require.NoError(t, err)

	entry2, ok := f.catalog.Get(2)
	require.True(t, ok)
	assert.Equal(t, []model.Gradient{entry2}, members)

	require.NoError(t, f.collections.Delete(warm.ID))

	for _, c := range f.collections.List() {
		assert.NotEqual(t, "Warm", c.Name)
	}

	_, err = f.collections.FindByName("Warm")
	assert.True(t, IsNotFound(err))
}

func TestCollections_Containing(t *testing.T) {
	f := newFixture(t)

	a, err := f.collections.CreateWithMember(model.CollectionDraft{Name: "A"}, 3)
	require.NoError(t, err)
	_, err = f.collections.CreateWithMember(model.CollectionDraft{Name: "B"}, 4)
	require.NoError(t, err)

	got := f.collections.Containing(3)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Empty(t, f.collections.Containing(8))
}

func TestCollections_ListReturnsCopies(t *testing.T) {
	f := newFixture(t)

	c, err := f.collections.CreateWithMember(model.CollectionDraft{Name: "A"}, 3)
	require.NoError(t, err)

	list := f.collections.List()
	list[0].GradientIDs[0] = 99
	list[0].Name = "mutated"

	got, err := f.collections.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got.GradientIDs)
	assert.Equal(t, "A", got.Name)
}

func TestCollections_RoundTrip(t *testing.T) {
	f := newFixture(t)

	a, err := f.collections.Create(model.CollectionDraft{Name: "A", Description: "first"})
	require.NoError(t, err)
	_, err = f.collections.ToggleMember(a.ID, 6)
	require.NoError(t, err)
	_, err = f.collections.CreateWithMember(model.CollectionDraft{Name: "B"}, 1)
	require.NoError(t, err)

	persisted, ok := store.Load[[]model.Collection](f.adapter, params.KeyGradientCollections)
	require.True(t, ok)
	assert.Equal(t, f.collections.List(), persisted)

	restarted := reopen(t, f.blobs)
	assert.Equal(t, f.collections.List(), restarted.collections.List())
}

func TestCollections_WriteFailureLeavesStateUnchanged(t *testing.T) {
	adapter := store.NewAdapter(failingStore{store.NewMemory()}, nil)
	cs := NewCollectionService(adapter, NewCatalogService(adapter, nil), nil)

	_, err := cs.Create(model.CollectionDraft{Name: "Lost"})
	require.Error(t, err)
	assert.Empty(t, cs.List())
}
