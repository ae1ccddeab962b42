package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/productfinder/productfinder/domain"
	"github.com/productfinder/productfinder/tui/common"
)

const (
	cardInner  = 24
	cardOuter  = cardInner + 4 // border and padding
	cardGap    = 1
	cardHeight = 6
)

var sectionTitles = []string{"Popular Searches", "Categories", "Try These"}

var searchTips = []string{
	"Try searching by category (e.g., 'electronics', 'clothing')",
	"Search by product type (e.g., 'shirt', 'jacket', 'monitor')",
	"Use specific terms like 'backpack', 'bracelet', or 'hard drive')",
	"The search looks in titles, descriptions, and categories",
}

// View renders the search page.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTop())

	if len(m.products) > 0 {
		b.WriteString(m.renderGrid())
	}
	b.WriteString("\n" + m.helpLine())
	return b.String()
}

// renderTop is everything above the results grid.
func (m Model) renderTop() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("🛍️ Product Finder") + "\n")
	b.WriteString(common.TaglineStyle.Render("Find the best products across stores in one place") + "\n")

	box := common.SearchBoxStyle
	if m.input.Focused() {
		box = common.SearchBoxFocusedStyle
	}
	b.WriteString(box.Render(m.input.View()) + "\n")

	if m.dropdownVisible() {
		b.WriteString(m.renderDropdown() + "\n")
	}
	b.WriteString(m.renderToggle() + "\n")

	switch {
	case m.loading:
		fmt.Fprintf(&b, "\n  %s Searching products...\n", m.spinner.View())
	case m.errText != "":
		b.WriteString("\n" + common.ErrorStyle.Render(m.errText) + "\n")
	case len(m.products) > 0:
		n := len(m.products)
		fmt.Fprintf(&b, "\n  Found %s product%s for %s\n",
			common.HighlightStyle.Render(fmt.Sprint(n)), common.Plural(n),
			common.HighlightStyle.Render(fmt.Sprintf("%q", m.query)))
	}

	if m.showTips && !m.loading {
		b.WriteString(m.renderTips() + "\n")
	}
	if m.query == "" && !m.loading && m.errText == "" && len(m.products) == 0 {
		b.WriteString(m.renderWelcome() + "\n")
	}
	return b.String()
}

func (m Model) renderDropdown() string {
	var b strings.Builder
	width := max(m.width-2, 20)
	for section, title := range sectionTitles {
		var line strings.Builder
		lineWidth := 0
		first := true
		for i, c := range m.chips {
			if c.section != section {
				continue
			}
			if first {
				b.WriteString(" " + common.SectionTitleStyle.Render(title) + "\n ")
				first = false
			}
			style := common.ChipStyle
			if i == m.chipCursor {
				style = common.ChipSelectedStyle
			}
			rendered := style.Render(c.term)
			w := ansi.StringWidth(rendered) + 1
			if lineWidth > 0 && lineWidth+w > width {
				b.WriteString(line.String() + "\n ")
				line.Reset()
				lineWidth = 0
			}
			line.WriteString(rendered + " ")
			lineWidth += w
		}
		if !first {
			b.WriteString(line.String() + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderToggle() string {
	list, scroll := common.ToggleInactiveStyle, common.ToggleInactiveStyle
	if m.mode == ScrollView {
		scroll = common.ToggleActiveStyle
	} else {
		list = common.ToggleActiveStyle
	}
	return " " + list.Render("List View") + scroll.Render("Scroll View")
}

func (m Model) renderTips() string {
	var b strings.Builder
	b.WriteString(common.SectionTitleStyle.Render("Search Tips:"))
	for _, tip := range searchTips {
		b.WriteString("\n• " + tip)
	}
	return common.TipsStyle.Render(b.String())
}

func (m Model) renderWelcome() string {
	lines := []string{
		common.SectionTitleStyle.Render("Welcome to Product Finder!"),
		"Start searching for products above to discover amazing items.",
		"",
		common.SectionTitleStyle.Render("What you can search for:"),
		"  Categories: " + common.HighlightStyle.Render("electronics, clothing, jewelry"),
		"  Product Types: " + common.HighlightStyle.Render("shirt, jacket, monitor, bracelet"),
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func (m Model) helpLine() string {
	help := " / search · enter open · tab list/scroll view · ←↑↓→ move · q quit"
	if m.input.Focused() {
		help = " enter search · ↑/↓ suggestions · esc leave search box · tab list/scroll view"
	}
	return common.CategoryStyle.Render(help)
}

// --- Grid ---

func (m Model) columns() int {
	return max(1, (m.width-2+cardGap)/(cardOuter+cardGap))
}

// visibleRows is how many card rows fit under the top section.
func (m Model) visibleRows() int {
	free := m.height - lipgloss.Height(m.renderTop()) - 2
	return max(1, free/cardHeight)
}

func (m *Model) ensureCursorVisible() {
	if len(m.products) == 0 {
		m.rowOffset = 0
		return
	}
	row := m.cursor / m.columns()
	rows := m.visibleRows()
	if row < m.rowOffset {
		m.rowOffset = row
	}
	if row >= m.rowOffset+rows {
		m.rowOffset = row - rows + 1
	}
}

func (m Model) renderGrid() string {
	cols := m.columns()
	rows := m.visibleRows()
	start := m.rowOffset * cols
	end := min(len(m.products), start+rows*cols)

	var out []string
	for i := start; i < end; i += cols {
		var cards []string
		for j := i; j < min(i+cols, end); j++ {
			if j > i {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(m.products[j], j == m.cursor))
		}
		out = append(out, " "+lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(out, "\n")
}

func (m Model) renderCard(p domain.Product, selected bool) string {
	title := common.ClampLines(p.Title, cardInner, 2)
	for len(title) < 2 {
		title = append(title, "")
	}
	for i, line := range title {
		title[i] = common.TitleStyle.Render(line)
	}

	heart := "♡"
	if m.liked(p.ID) {
		heart = common.HeartStyle.Render("♥")
	}
	price := common.PriceStyle.Render(p.PriceLabel())
	gap := max(cardInner-ansi.StringWidth(price)-ansi.StringWidth(heart), 1)

	body := strings.Join(append(title,
		common.CategoryStyle.Render(ansi.Truncate(p.Category, cardInner, "…")),
		price+strings.Repeat(" ", gap)+heart,
	), "\n")

	style := common.CardStyle
	if selected {
		style = common.SelectedCardStyle
	}
	return style.Width(cardInner + 2).Render(body)
}
