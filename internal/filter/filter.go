// Package filter narrows the gradient catalog to the visible subset.
//
// Everything here is a pure function of its inputs: the catalog, the search
// criteria and the favorite set are passed in explicitly.
package filter

import (
	"slices"
	"strings"

	"github.com/inovacc/gradients/internal/model"
)

// Criteria are the toolbar inputs.
type Criteria struct {
	// Query matches name, description or category, case-insensitively.
	Query string

	// Categories keeps only gradients in one of these categories.
	Categories []string

	// FavoritesOnly keeps only gradients in the favorite set.
	FavoritesOnly bool
}

// Active reports whether any criterion narrows the result.
func (c Criteria) Active() bool {
	return c.Query != "" || len(c.Categories) > 0 || c.FavoritesOnly
}

// Apply returns the entries matching every active criterion, in input order.
// An empty result is valid.
func Apply(entries []model.Gradient, c Criteria, favorites map[int]struct{}) []model.Gradient {
	out := entries

	if c.Query != "" {
		out = keep(out, func(g model.Gradient) bool {
			return MatchQuery(g, c.Query)
		})
	}

	if len(c.Categories) > 0 {
		out = keep(out, func(g model.Gradient) bool {
			return slices.Contains(c.Categories, g.Category)
		})
	}

	if c.FavoritesOnly {
		out = keep(out, func(g model.Gradient) bool {
			_, ok := favorites[g.ID]
			return ok
		})
	}

	return out
}

// MatchQuery reports whether the lowercase name, description or category of
// g contains the lowercase query. An empty query matches everything.
func MatchQuery(g model.Gradient, query string) bool {
	q := strings.ToLower(query)

	return strings.Contains(strings.ToLower(g.Name), q) ||
		strings.Contains(strings.ToLower(g.Description), q) ||
		strings.Contains(strings.ToLower(g.Category), q)
}

func keep(in []model.Gradient, pred func(model.Gradient) bool) []model.Gradient {
	out := make([]model.Gradient, 0, len(in))

	for _, g := range in {
		if pred(g) {
			out = append(out, g)
		}
	}

	return out
}

// Categories returns the distinct categories of entries, sorted.
func Categories(entries []model.Gradient) []string {
	out := make([]string, 0, len(entries))
	for _, g := range entries {
		out = append(out, g.Category)
	}

	slices.Sort(out)

	return slices.Compact(out)
}

// ToggleCategory removes category from selected when present and appends it
// otherwise. selected is not modified.
func ToggleCategory(selected []string, category string) []string {
	if i := slices.Index(selected, category); i >= 0 {
		return slices.Delete(slices.Clone(selected), i, i+1)
	}

	return append(slices.Clone(selected), category)
}

// FavoriteSet builds the lookup set Apply expects from a list of ids.
func FavoriteSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
