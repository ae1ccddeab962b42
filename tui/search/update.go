package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/productfinder/productfinder/infra/logging"
)

// Update handles messages for the search view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SuggestionsLoadedMsg:
		if msg.Err != nil {
			logging.Debug("suggestions unavailable", "err", msg.Err)
			return m, nil
		}
		m.suggestions = msg.Suggestions
		m.chips = flattenChips(msg.Suggestions)
		m.chipCursor = -1
		return m, nil

	case SearchResultMsg:
		return m.applyResult(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.handleInputKey(msg)
		}
		return m.handleGridKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) applyResult(msg SearchResultMsg) (Model, tea.Cmd) {
	if msg.Seq != m.searchSeq {
		return m, nil
	}
	m.loading = false
	m.cursor, m.rowOffset = 0, 0

	switch {
	case msg.Err != nil:
		logging.Warn("search failed", "query", msg.Query, "err", msg.Err)
		m.products = nil
		m.errText = unavailableMessage
		m.showTips = true
		return m, nil
	case len(msg.Products) == 0:
		m.products = nil
		m.errText = fmt.Sprintf("No products found for %q. Try a different search term.", msg.Query)
		m.showTips = true
	default:
		m.products = msg.Products
		m.errText = ""
		m.showTips = false
	}

	if m.mode == ScrollView {
		return m, openFeed(m.products, 0)
	}
	return m, nil
}

// submit runs q, or clears the results when q is blank.
func (m Model) submit(q string) (Model, tea.Cmd) {
	q = strings.TrimSpace(q)
	m.chipCursor = -1
	m.searchSeq++
	if q == "" {
		m.query = ""
		m.products = nil
		m.errText = ""
		m.showTips = false
		m.loading = false
		m.cursor, m.rowOffset = 0, 0
		return m, nil
	}
	m.input.SetValue(q)
	m.input.Blur()
	m.query = q
	m.loading = true
	m.errText = ""
	return m, tea.Batch(m.searchCmd(m.searchSeq, q), m.spinner.Tick)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Blur):
		m.input.Blur()
		m.chipCursor = -1
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.dropdownVisible() && m.chipCursor >= 0 {
			return m.submit(m.chips[m.chipCursor].term)
		}
		return m.submit(m.input.Value())

	case key.Matches(msg, m.keys.ToggleView):
		return m.toggleMode()

	case msg.Type == tea.KeyDown:
		if m.dropdownVisible() {
			m.chipCursor = min(m.chipCursor+1, len(m.chips)-1)
		}
		return m, nil

	case msg.Type == tea.KeyUp:
		if m.dropdownVisible() {
			m.chipCursor = max(m.chipCursor-1, -1)
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.chipCursor = -1
	}
	return m, cmd
}

func (m Model) handleGridKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	cols := m.columns()
	switch {
	case key.Matches(msg, m.keys.Focus):
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.ToggleView):
		return m.toggleMode()
	case key.Matches(msg, m.keys.Submit):
		if len(m.products) == 0 {
			return m, nil
		}
		m.mode = ScrollView
		return m, openFeed(m.products, m.cursor)
	case key.Matches(msg, m.keys.Up):
		m.move(-cols)
	case key.Matches(msg, m.keys.Down):
		m.move(cols)
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.move(m.columns())
	case tea.MouseButtonWheelUp:
		m.move(-m.columns())
	}
	return m, nil
}

// toggleMode flips List View and Scroll View; Scroll View opens the feed
// at the selected card.
func (m Model) toggleMode() (Model, tea.Cmd) {
	if m.mode == ScrollView {
		m.mode = ListView
		return m, nil
	}
	m.mode = ScrollView
	return m, openFeed(m.products, m.cursor)
}

func (m *Model) move(delta int) {
	if len(m.products) == 0 {
		return
	}
	m.cursor = max(0, min(m.cursor+delta, len(m.products)-1))
	m.ensureCursorVisible()
}
