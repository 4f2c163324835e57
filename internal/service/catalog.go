package service

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/inovacc/gradients/internal/filter"
	"github.com/inovacc/gradients/internal/model"
	"github.com/inovacc/gradients/internal/params"
	"github.com/inovacc/gradients/internal/store"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether s is a #rgb or #rrggbb color.
func IsHexColor(s string) bool {
	return hexColor.MatchString(s)
}

// CatalogService owns the built-in and custom gradients.
type CatalogService struct {
	mu      sync.RWMutex
	adapter *store.Adapter
	log     *slog.Logger
	builtin []model.Gradient
	custom  []model.Gradient
	nextID  int
}

// NewCatalogService seeds the built-ins and appends any persisted custom
// gradients.
func NewCatalogService(adapter *store.Adapter, log *slog.Logger) *CatalogService {
	cs := &CatalogService{
		adapter: adapter,
		log:     serviceLogger(log, "catalog"),
		builtin: model.Builtins(),
		nextID:  model.BuiltinCount + 1,
	}

	if custom, ok := store.Load[[]model.Gradient](adapter, params.KeyCustomGradients); ok {
		cs.custom = custom
		cs.nextID = maxID(cs.builtin, custom) + 1
	}

	return cs
}

func maxID(lists ...[]model.Gradient) int {
	highest := 0

	for _, list := range lists {
		for _, g := range list {
			highest = max(highest, g.ID)
		}
	}

	return highest
}

// List returns the built-ins followed by custom gradients in creation order.
func (cs *CatalogService) List() []model.Gradient {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	return slices.Concat(cs.builtin, cs.custom)
}

// Custom returns only the user-created gradients.
func (cs *CatalogService) Custom() []model.Gradient {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	return slices.Clone(cs.custom)
}

// Get looks a gradient up by id.
func (cs *CatalogService) Get(id int) (model.Gradient, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	for _, list := range [][]model.Gradient{cs.builtin, cs.custom} {
		if i := slices.IndexFunc(list, func(g model.Gradient) bool { return g.ID == id }); i >= 0 {
			return list[i], true
		}
	}

	return model.Gradient{}, false
}

// NextID returns the id the next created gradient will receive.
func (cs *CatalogService) NextID() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	return cs.nextID
}

// Categories returns the distinct categories of the current catalog, sorted.
func (cs *CatalogService) Categories() []string {
	return filter.Categories(cs.List())
}

// Create validates draft, appends the new gradient and persists the custom
// gradients.
func (cs *CatalogService) Create(draft model.GradientDraft) (model.Gradient, error) {
	g, err := buildGradient(draft)
	if err != nil {
		return model.Gradient{}, err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	g.ID = cs.nextID
	custom := append(slices.Clone(cs.custom), g)

	if err := cs.adapter.Save(params.KeyCustomGradients, custom); err != nil {
		return model.Gradient{}, err
	}

	cs.custom = custom
	cs.nextID++

	cs.log.Debug("gradient created", "id", g.ID, "name", g.Name, "category", g.Category)

	return g, nil
}

func buildGradient(draft model.GradientDraft) (model.Gradient, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return model.Gradient{}, &ValidationError{Field: "name", Message: "please enter a name for your gradient"}
	}

	if len(draft.Colors) != 2 {
		return model.Gradient{}, &ValidationError{Field: "colors", Message: fmt.Sprintf("expected 2 colors, got %d", len(draft.Colors))}
	}

	for _, c := range draft.Colors {
		if !IsHexColor(c) {
			return model.Gradient{}, &ValidationError{Field: "colors", Message: fmt.Sprintf("%q is not a hex color", c)}
		}
	}

	direction := strings.TrimSpace(draft.Direction)
	if direction == "" {
		direction = model.DirectionDiagonal
	}

	category := strings.TrimSpace(draft.Category)
	if category == "" {
		category = model.DefaultCategory
	}

	description := strings.TrimSpace(draft.Description)
	if description == "" {
		description = "Custom " + strings.ToLower(category) + " gradient"
	}

	return model.Gradient{
		Name:        name,
		Gradient:    Descriptor(direction, draft.Colors[0], draft.Colors[1]),
		Colors:      slices.Clone(draft.Colors),
		Description: description,
		Category:    category,
	}, nil
}

// Descriptor composes the CSS linear-gradient expression for two colors.
func Descriptor(direction, from, to string) string {
	return fmt.Sprintf("linear-gradient(%s, %s 0%%, %s 100%%)", direction, from, to)
}
