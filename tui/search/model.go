package search

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/domain"
	"github.com/productfinder/productfinder/tui/common"
)

const (
	placeholder        = "Search products..."
	unavailableMessage = "Unable to search products. Please check if the backend is running."

	// popularLimit caps the Popular Searches section.
	popularLimit = 8
)

// ViewMode is the results presentation chosen with the toggle.
type ViewMode string

const (
	ListView   ViewMode = "list"
	ScrollView ViewMode = "scroll"
)

// ParseViewMode maps a persisted value onto a mode, defaulting to the list.
func ParseViewMode(s string) ViewMode {
	if ViewMode(s) == ScrollView {
		return ScrollView
	}
	return ListView
}

// --- Messages ---

// SearchResultMsg carries the answer to one submitted query.
type SearchResultMsg struct {
	Seq      int
	Query    string
	Products []domain.Product
	Err      error
}

// SuggestionsLoadedMsg carries the search box suggestions.
type SuggestionsLoadedMsg struct {
	Suggestions domain.Suggestions
	Err         error
}

// OpenFeedMsg asks the root model to show products in the immersive feed.
type OpenFeedMsg struct {
	Products []domain.Product
	Index    int
}

// --- Model ---

type chip struct {
	section int
	term    string
}

// Model is the search box, suggestions dropdown and results grid.
type Model struct {
	catalog app.CatalogService
	keys    common.KeyMap

	input   textinput.Model
	spinner spinner.Model

	suggestions domain.Suggestions
	chips       []chip
	chipCursor  int // -1 when no chip is selected

	query     string // last submitted query
	products  []domain.Product
	loading   bool
	errText   string
	showTips  bool
	searchSeq int

	cursor    int
	rowOffset int
	mode      ViewMode
	liked     func(domain.ProductID) bool

	width, height int
}

// New creates the search view with a focused input.
func New(catalog app.CatalogService) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "🔍 "
	ti.CharLimit = 120
	ti.Width = 50
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(common.Amber)

	return Model{
		catalog:    catalog,
		keys:       common.DefaultKeyMap(),
		input:      ti,
		spinner:    s,
		chipCursor: -1,
		mode:       ListView,
		liked:      func(domain.ProductID) bool { return false },
		width:      80,
		height:     24,
	}
}

// WithQuery restores a previous query; Init runs it.
func (m Model) WithQuery(q string) Model {
	m, _ = m.submit(q)
	return m
}

// WithMode restores the view toggle.
func (m Model) WithMode(mode ViewMode) Model {
	m.mode = mode
	return m
}

// WithLiked sets the lookup used to draw hearts on liked products.
func (m Model) WithLiked(liked func(domain.ProductID) bool) Model {
	if liked != nil {
		m.liked = liked
	}
	return m
}

// Init loads suggestions and runs a restored query.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.fetchSuggestions()}
	if m.loading {
		cmds = append(cmds, m.searchCmd(m.searchSeq, m.query), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// SetSize applies the terminal size.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.input.Width = max(min(width-10, 60), 10)
	m.ensureCursorVisible()
	return m
}

// ReturnFromFeed switches back to the list with the cursor on index.
func (m Model) ReturnFromFeed(index int) Model {
	m.mode = ListView
	if len(m.products) > 0 {
		m.cursor = max(0, min(index, len(m.products)-1))
	}
	m.ensureCursorVisible()
	return m
}

// Focused reports whether the search box takes key input.
func (m Model) Focused() bool { return m.input.Focused() }

// Query is the last submitted query.
func (m Model) Query() string { return m.query }

// Mode is the current view toggle.
func (m Model) Mode() ViewMode { return m.mode }

// Products are the current results.
func (m Model) Products() []domain.Product { return m.products }

// Cursor is the selected card in the grid.
func (m Model) Cursor() int { return m.cursor }

// Loading reports whether a search is in flight.
func (m Model) Loading() bool { return m.loading }

// Err is the message shown in the error banner, if any.
func (m Model) Err() string { return m.errText }

// ShowTips reports whether the search tips panel is visible.
func (m Model) ShowTips() bool { return m.showTips }

func (m Model) dropdownVisible() bool {
	return m.input.Focused() && len(m.chips) > 0
}
