package filter

import (
	"testing"

	"github.com/inovacc/gradients/internal/model"
	"github.com/stretchr/testify/assert"
)

func ids(gs []model.Gradient) []int {
	out := make([]int, 0, len(gs))
	for _, g := range gs {
		out = append(out, g.ID)
	}

	return out
}

func TestApply_NoCriteriaIsIdentity(t *testing.T) {
	entries := model.Builtins()

	got := Apply(entries, Criteria{}, nil)
	assert.Equal(t, entries, got)
	assert.False(t, Criteria{}.Active())
}

func TestApply_Query(t *testing.T) {
	entries := model.Builtins()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "name match is case-insensitive", query: "OCEAN", want: []int{1}},
		{name: "description match", query: "nebulae", want: []int{8}},
		{name: "category match", query: "sky", want: []int{4, 7}},
		{name: "matches across fields", query: "golden", want: []int{2, 6}},
		{name: "no match", query: "zebra", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(entries, Criteria{Query: tt.query}, nil)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_Categories(t *testing.T) {
	got := Apply(model.Builtins(), Criteria{Categories: []string{"Space", "Sky"}}, nil)
	assert.Equal(t, []int{4, 7, 8}, ids(got), "result keeps catalog order")
}

func TestApply_FavoritesOnly(t *testing.T) {
	favs := FavoriteSet([]int{7, 3, 42})

	got := Apply(model.Builtins(), Criteria{FavoritesOnly: true}, favs)
	assert.Equal(t, []int{3, 7}, ids(got))

	got = Apply(model.Builtins(), Criteria{FavoritesOnly: true}, nil)
	assert.Empty(t, got)
}

func TestApply_Conjunction(t *testing.T) {
	entries := []model.Gradient{
		{ID: 1, Name: "Alpha Warm", Category: "A"},
		{ID: 2, Name: "Alpha Cool", Category: "B"},
		{ID: 3, Name: "Beta", Category: "A"},
		{ID: 4, Name: "Alpha Plain", Category: "C"},
	}

	c := Criteria{Query: "alpha", Categories: []string{"A", "B"}}
	got := Apply(entries, c, nil)

	queryOnly := ids(Apply(entries, Criteria{Query: "alpha"}, nil))
	categoryOnly := ids(Apply(entries, Criteria{Categories: []string{"A", "B"}}, nil))

	var intersection []int
	for _, id := range queryOnly {
		for _, other := range categoryOnly {
			if id == other {
				intersection = append(intersection, id)
			}
		}
	}

	assert.Equal(t, intersection, ids(got))
	assert.Equal(t, []int{1, 2}, ids(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	entries := model.Builtins()
	_ = Apply(entries, Criteria{Query: "deep", FavoritesOnly: true}, FavoriteSet([]int{8}))

	assert.Equal(t, model.Builtins(), entries)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Nature", "Sky", "Space"}, Categories(model.Builtins()))
	assert.Empty(t, Categories(nil))

	entries := []model.Gradient{{Category: "Space"}, {Category: "Nature"}, {Category: "Sky"}, {Category: "Nature"}}
	assert.Equal(t, []string{"Nature", "Sky", "Space"}, Categories(entries))
}

func TestToggleCategory(t *testing.T) {
	selected := []string{"Nature"}

	added := ToggleCategory(selected, "Sky")
	assert.Equal(t, []string{"Nature", "Sky"}, added)
	assert.Equal(t, []string{"Nature"}, selected, "input must not change")

	removed := ToggleCategory(added, "Nature")
	assert.Equal(t, []string{"Sky"}, removed)
	assert.Equal(t, []string{"Nature", "Sky"}, added)
}

func TestMatchQuery(t *testing.T) {
	g := model.Builtins()[0]

	assert.True(t, MatchQuery(g, ""))
	assert.True(t, MatchQuery(g, "OCEAN"))
	assert.True(t, MatchQuery(g, "calming"))
	assert.True(t, MatchQuery(g, "nat"))
	assert.False(t, MatchQuery(g, "oba"))
}
