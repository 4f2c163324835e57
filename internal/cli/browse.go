package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/gradients/internal/core"
	"github.com/inovacc/gradients/internal/filter"
	"github.com/inovacc/gradients/internal/model"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

var (
	keyFavorite = key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "favorite"),
	)
	keyFavoritesOnly = key.NewBinding(
		key.WithKeys("*"),
		key.WithHelp("*", "favorites only"),
	)
	keyCopy = key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy css"),
	)
	keyNextCategory = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next category"),
	)
	keyToggleCategory = key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle category"),
	)
)

type gradientItem struct {
	gradient model.Gradient
	favorite bool
}

func (i gradientItem) Title() string {
	fav := ""
	if i.favorite {
		fav = "★ "
	}

	return fmt.Sprintf("%s%s %s", fav, Swatch(i.gradient.Colors, 2), i.gradient.Name)
}

func (i gradientItem) Description() string {
	return categoryStyle.Render(fmt.Sprintf("#%d %s | %s", i.gradient.ID, i.gradient.Category, i.gradient.Description))
}

func (i gradientItem) FilterValue() string {
	return strings.Join([]string{i.gradient.Name, i.gradient.Description, i.gradient.Category}, "\n")
}

// queryFilter makes the list's "/" filter use the same substring match as
// the list command. Targets arrive in item order, so index i is entries[i].
func queryFilter(entries []model.Gradient) list.FilterFunc {
	return func(term string, targets []string) []list.Rank {
		ranks := make([]list.Rank, 0, len(targets))

		for i := range targets {
			if i < len(entries) && filter.MatchQuery(entries[i], term) {
				ranks = append(ranks, list.Rank{Index: i})
			}
		}

		return ranks
	}
}

// BrowserModel is the TUI model for browsing the gallery.
type BrowserModel struct {
	gallery  *core.Gallery
	list     list.Model
	criteria filter.Criteria
	// focus indexes the catalog categories; -1 means none is focused yet.
	focus    int
	selected *model.Gradient
	status   string
	err      error
	quitting bool
}

// NewBrowser creates a browser over the entries matching criteria.
func NewBrowser(g *core.Gallery, criteria filter.Criteria) BrowserModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keyFavorite, keyFavoritesOnly, keyCopy, keyNextCategory, keyToggleCategory}
	}

	m := BrowserModel{gallery: g, list: l, criteria: criteria, focus: -1}
	m.refresh()

	return m
}

func (m *BrowserModel) refresh() {
	entries := m.gallery.Visible(m.criteria)

	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = gradientItem{gradient: e, favorite: m.gallery.Favorites.Contains(e.ID)}
	}

	m.list.Filter = queryFilter(entries)
	m.list.SetItems(items)

	title := "All Gradients"
	if m.criteria.FavoritesOnly {
		title = "Favorite Gradients"
	}

	if len(m.criteria.Categories) > 0 {
		title += " [" + strings.Join(m.criteria.Categories, ", ") + "]"
	}

	m.list.Title = title
}

// focusedCategory returns the category the toggle key acts on.
func (m BrowserModel) focusedCategory() (string, bool) {
	categories := m.gallery.Catalog.Categories()
	if m.focus < 0 || m.focus >= len(categories) {
		return "", false
	}

	return categories[m.focus], true
}

func (m *BrowserModel) nextCategory() {
	categories := m.gallery.Catalog.Categories()
	if len(categories) == 0 {
		return
	}

	m.focus = (m.focus + 1) % len(categories)
	m.err = nil
	m.status = "Category: " + categories[m.focus] + " (t to toggle)"
}

func (m *BrowserModel) toggleCategory() {
	category, ok := m.focusedCategory()
	if !ok {
		m.nextCategory()

		category, ok = m.focusedCategory()
		if !ok {
			return
		}
	}

	m.criteria.Categories = filter.ToggleCategory(m.criteria.Categories, category)
	m.err = nil

	if slices.Contains(m.criteria.Categories, category) {
		m.status = "Showing " + category
	} else {
		m.status = "Cleared " + category + " filter"
	}

	m.refresh()
}

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case msg.String() == "ctrl+c", msg.String() == "q", msg.String() == "esc":
			m.quitting = true

			return m, tea.Quit

		case msg.String() == "enter":
			if i, ok := m.list.SelectedItem().(gradientItem); ok {
				m.selected = &i.gradient
			}

			return m, tea.Quit

		case key.Matches(msg, keyFavorite):
			m.toggleFavorite()

			return m, nil

		case key.Matches(msg, keyFavoritesOnly):
			m.criteria.FavoritesOnly = !m.criteria.FavoritesOnly
			m.refresh()

			return m, nil

		case key.Matches(msg, keyCopy):
			m.copySelected()

			return m, nil

		case key.Matches(msg, keyNextCategory):
			m.nextCategory()

			return m, nil

		case key.Matches(msg, keyToggleCategory):
			m.toggleCategory()

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *BrowserModel) toggleFavorite() {
	i, ok := m.list.SelectedItem().(gradientItem)
	if !ok {
		return
	}

	added, err := m.gallery.ToggleFavorite(i.gradient.ID)
	if err != nil {
		m.err = err

		return
	}

	m.err = nil

	if added {
		m.status = fmt.Sprintf("Added %s to favorites", i.gradient.Name)
	} else {
		m.status = fmt.Sprintf("Removed %s from favorites", i.gradient.Name)
	}

	m.refresh()
}

func (m *BrowserModel) copySelected() {
	i, ok := m.list.SelectedItem().(gradientItem)
	if !ok {
		return
	}

	if _, err := m.gallery.Copy(i.gradient.ID); err != nil {
		m.err = err

		return
	}

	m.err = nil
	m.status = fmt.Sprintf("Copied CSS for %s", i.gradient.Name)
}

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	footer := ""

	switch {
	case m.err != nil:
		footer = "\n" + errorStyle.Render("Error: "+m.err.Error())
	case m.status != "":
		footer = "\n" + statusStyle.Render(m.status)
	}

	return docStyle.Render(m.list.View() + footer)
}

// Selected returns the gradient chosen with enter, if any.
func (m BrowserModel) Selected() *model.Gradient {
	return m.selected
}
