package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/infra/config"
	"github.com/productfinder/productfinder/tui/common"
	"github.com/productfinder/productfinder/tui/feed"
	"github.com/productfinder/productfinder/tui/search"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Catalog app.CatalogService
	Feed    feed.Deps
	UIState config.UIState // restored from the last run
}

type activeView int

const (
	searchView activeView = iota
	feedView
)

// App is the root Bubble Tea model. It routes between the list and the feed.
type App struct {
	deps   Deps
	active activeView
	search search.Model
	feed   feed.Model
	keys   common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	f := feed.New(deps.Feed)
	s := search.New(deps.Catalog).
		WithLiked(f.IsLiked).
		WithMode(search.ParseViewMode(deps.UIState.ViewMode))
	if deps.UIState.Query != "" {
		s = s.WithQuery(deps.UIState.Query)
	}
	return App{
		deps:   deps,
		active: searchView,
		search: s,
		feed:   f,
		keys:   common.DefaultKeyMap(),
	}
}

// Init delegates to the search view, which loads suggestions.
func (a App) Init() tea.Cmd {
	return a.search.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.active == searchView && !a.search.Focused() && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.search = a.search.SetSize(msg.Width, msg.Height)
		var cmd tea.Cmd
		a.feed, cmd = a.feed.SetSize(msg.Width, msg.Height)
		return a, cmd

	case search.OpenFeedMsg:
		a.active = feedView
		var cmd tea.Cmd
		a.feed, cmd = a.feed.SetProducts(msg.Products, msg.Index)
		return a, cmd

	case feed.ExitMsg:
		a.active = searchView
		a.search = a.search.ReturnFromFeed(msg.Index)
		return a, nil
	}

	// Input goes to the active view only; everything else (results, timers,
	// thumbnails) is delivered to both, and each ignores what is not its own.
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return a.updateActive(msg)
	}
	var searchCmd, feedCmd tea.Cmd
	a.search, searchCmd = a.search.Update(msg)
	a.feed, feedCmd = a.feed.Update(msg)
	return a, tea.Batch(searchCmd, feedCmd)
}

func (a App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.active {
	case feedView:
		a.feed, cmd = a.feed.Update(msg)
	default:
		a.search, cmd = a.search.Update(msg)
	}
	return a, cmd
}

// UIState is what a restart restores: the last query and view mode. The
// caller saves it once the program exits.
func (a App) UIState() config.UIState {
	return config.UIState{
		Query:    a.search.Query(),
		ViewMode: string(a.search.Mode()),
	}
}

// View renders the active sub-model.
func (a App) View() string {
	if a.active == feedView {
		return a.feed.View()
	}
	return a.search.View()
}
