package core

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/inovacc/gradients/internal/filter"
	"github.com/inovacc/gradients/internal/model"
	"github.com/inovacc/gradients/internal/service"
	"github.com/inovacc/gradients/internal/store"
)

// Gallery bundles the blob store with the services that persist into it.
type Gallery struct {
	Catalog     *service.CatalogService
	Favorites   *service.FavoriteService
	Collections *service.CollectionService

	cfg       model.Config
	blobs     store.Store
	log       *slog.Logger
	clipboard Clipboard
}

// Open opens the backend named by cfg and loads the gallery state.
func Open(cfg model.Config, log *slog.Logger) (*Gallery, error) {
	blobs, err := store.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store in %s: %w", cfg.Backend, cfg.DataDir, err)
	}

	return New(cfg, blobs, log), nil
}

// New builds a gallery on an already open store. The gallery takes ownership
// of blobs and closes it in [Gallery.Close].
func New(cfg model.Config, blobs store.Store, log *slog.Logger) *Gallery {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	adapter := store.NewAdapter(blobs, log)
	catalog := service.NewCatalogService(adapter, log)

	g := &Gallery{
		Catalog:     catalog,
		Favorites:   service.NewFavoriteService(adapter, log),
		Collections: service.NewCollectionService(adapter, catalog, log),
		cfg:         cfg,
		blobs:       blobs,
		log:         log,
		clipboard:   systemClipboard{},
	}

	log.Debug("gallery opened",
		"backend", cfg.Backend,
		"gradients", len(catalog.List()),
		"custom", len(catalog.Custom()),
		"next_id", catalog.NextID(),
		"collections", len(g.Collections.List()))

	return g
}

// Close releases the underlying store.
func (g *Gallery) Close() error {
	return g.blobs.Close()
}

// Visible returns the catalog entries matching c.
func (g *Gallery) Visible(c filter.Criteria) []model.Gradient {
	return filter.Apply(g.Catalog.List(), c, g.Favorites.Set())
}

// Gradient resolves id against the catalog.
func (g *Gallery) Gradient(id int) (model.Gradient, error) {
	entry, ok := g.Catalog.Get(id)
	if !ok {
		return model.Gradient{}, &service.NotFoundError{Kind: "gradient", ID: fmt.Sprint(id)}
	}

	return entry, nil
}

// ResolveCollection finds a collection by id, falling back to a
// case-insensitive name match.
func (g *Gallery) ResolveCollection(ref string) (model.Collection, error) {
	if c, err := g.Collections.Get(ref); err == nil {
		return c, nil
	}

	return g.Collections.FindByName(ref)
}

// Detail is what the gradient card shows.
type Detail struct {
	Gradient    model.Gradient
	Favorite    bool
	Collections []model.Collection
}

// Detail gathers the card for gradient id.
func (g *Gallery) Detail(id int) (Detail, error) {
	entry, err := g.Gradient(id)
	if err != nil {
		return Detail{}, err
	}

	return Detail{
		Gradient:    entry,
		Favorite:    g.Favorites.Contains(id),
		Collections: g.Collections.Containing(id),
	}, nil
}

// ToggleFavorite flips the favorite flag of an existing gradient.
func (g *Gallery) ToggleFavorite(id int) (bool, error) {
	if _, err := g.Gradient(id); err != nil {
		return false, err
	}

	return g.Favorites.Toggle(id)
}

// ToggleMember flips membership of an existing gradient in the referenced
// collection.
func (g *Gallery) ToggleMember(collectionRef string, gradientID int) (model.Collection, bool, error) {
	c, err := g.ResolveCollection(collectionRef)
	if err != nil {
		return model.Collection{}, false, err
	}

	if _, err := g.Gradient(gradientID); err != nil {
		return c, false, err
	}

	added, err := g.Collections.ToggleMember(c.ID, gradientID)

	return c, added, err
}

// exportPath returns out when given, otherwise name inside the export
// directory. A derived path never leaves the export directory.
func (g *Gallery) exportPath(out, name string) (string, error) {
	if out != "" {
		return out, nil
	}

	dir := filepath.Clean(g.cfg.ExportDir)
	path := filepath.Join(dir, name)

	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.Dir(rel) != "." {
		return "", fmt.Errorf("export name %q does not stay in %s", name, dir)
	}

	return path, nil
}
