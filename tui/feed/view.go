package feed

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/productfinder/productfinder/domain"
	"github.com/productfinder/productfinder/infra/thumbnail"
	"github.com/productfinder/productfinder/tui/common"
)

// View renders the mounted slots at their displayed offsets.
func (m Model) View() string {
	h := m.height()
	if len(m.products) == 0 {
		body := lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center,
			common.CategoryStyle.Render("No products found."))
		return body + "\n" + m.helpLine()
	}

	blank := strings.Repeat(" ", m.width)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = blank
	}

	rel := m.ctrl.RelativeShown()
	for _, s := range m.ctrl.Slots() {
		top := int(math.Round(rel + float64(s.Rel*h)))
		if top >= h || top+h <= 0 {
			continue
		}
		for i, line := range m.renderCard(m.products[s.Index]) {
			if y := top + i; y >= 0 && y < h {
				lines[y] = line
			}
		}
	}

	if m.showScrollHint() {
		lines[h-1] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, common.CategoryStyle.Render("Scroll ↓"))
	}
	if m.toast != "" && h > 2 {
		lines[1] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, common.ToastStyle.Render(m.toast))
	}
	if m.reviewsOpen {
		drawer := strings.Split(m.renderDrawer(), "\n")
		start := max(h-len(drawer), 0)
		for i := start; i < h; i++ {
			lines[i] = fitWidth(drawer[i-start], m.width)
		}
	}
	return strings.Join(lines, "\n") + "\n" + m.helpLine()
}

func (m Model) showScrollHint() bool {
	return len(m.products) > 1 && m.ctrl.Settled() == 0 && m.ctrl.Active() == 0 &&
		!m.ctrl.Animating() && !m.reviewsOpen
}

func (m Model) helpLine() string {
	return common.CategoryStyle.Render(fitWidth(
		" esc back · ↑/↓ swipe · l like · c reviews · s share · o details", m.width))
}

// renderCard draws one full-height product card including the action rail.
func (m Model) renderCard(p domain.Product) []string {
	l := m.layout()
	left := make([]string, l.height)

	if l.thumbRows > 0 {
		art, ok := m.thumbs[thumbKey(p.Thumbnail, l.thumbCols, l.thumbRows)]
		if !ok {
			art = thumbnail.Placeholder(l.thumbCols, l.thumbRows)
		}
		for i, line := range strings.Split(art, "\n") {
			if i < l.thumbRows {
				setRow(left, l.thumbTop+i, lipgloss.PlaceHorizontal(l.contentWidth, lipgloss.Center, line))
			}
		}
		if m.burstID == p.ID {
			heart := common.HeartStyle.Render("♥   ♥   ♥")
			setRow(left, l.thumbTop+l.thumbRows/2, lipgloss.PlaceHorizontal(l.contentWidth, lipgloss.Center, heart))
		}
	}

	for i, line := range common.ClampLines(p.Title, l.contentWidth-4, 2) {
		setRow(left, l.titleRow+i, "  "+common.TitleStyle.Render(line))
	}
	if p.Category != "" {
		setRow(left, l.categoryRow, "  "+common.CategoryStyle.Render(p.Category))
	}
	setRow(left, l.priceRow, "  "+common.PriceStyle.Render(p.PriceLabel())+" "+common.CategoryStyle.Render("incl. taxes"))

	var actions strings.Builder
	x := 0
	for i, b := range l.buttons {
		actions.WriteString(strings.Repeat(" ", b.x0-x))
		style := common.ActionStyle
		if i == 0 {
			style = common.PrimaryActionStyle
		}
		actions.WriteString(style.Render(b.label))
		x = b.x1
	}
	setRow(left, l.actionsRow, actions.String())

	rail := m.renderRail(p, l)
	out := make([]string, l.height)
	for i := range out {
		out[i] = fitWidth(left[i], l.contentWidth) + fitWidth(rail[i], m.width-l.contentWidth)
	}
	return out
}

func (m Model) renderRail(p domain.Product, l layout) []string {
	rail := make([]string, l.height)
	liked := m.liked.has(p.ID)
	eng := domain.SeededEngagement(p)

	heart := "♡"
	if liked {
		heart = "♥"
	}
	heartStyle := common.HeartStyle
	if m.popID == p.ID {
		heart = "(" + heart + ")"
		heartStyle = heartStyle.Underline(true)
	} else {
		heart = " " + heart + " "
	}
	if !liked {
		heartStyle = common.TitleStyle
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(railWidth, lipgloss.Center, s)
	}
	setRow(rail, l.railLike, center(heartStyle.Render(heart)))
	setRow(rail, l.railLike+1, center(common.CategoryStyle.Render(common.GroupDigits(displayedLikes(p, liked)))))
	setRow(rail, l.railReviews, center(common.TitleStyle.Render("💬")))
	setRow(rail, l.railReviews+1, center(common.CategoryStyle.Render(common.GroupDigits(eng.Reviews))))
	setRow(rail, l.railShare, center(common.TitleStyle.Render("↗")))
	setRow(rail, l.railShare+1, center(common.CategoryStyle.Render("Share")))
	return rail
}

// renderDrawer is the reviews bottom sheet.
func (m Model) renderDrawer() string {
	var b strings.Builder
	b.WriteString(common.SectionTitleStyle.Render("Reviews"))
	b.WriteString(common.CategoryStyle.Render("   esc close") + "\n\n")
	for _, r := range domain.MockReviews() {
		fmt.Fprintf(&b, "%s %s %s\n", common.ChipStyle.Render(common.Initials(r.User)),
			common.TitleStyle.Render(r.User), common.PriceStyle.Render(common.Stars(r.Rating)))
		b.WriteString("     " + r.Text + "\n")
	}
	b.WriteString("\n" + common.CategoryStyle.Render("Write a review (mock UI)…"))
	return common.DrawerStyle.Width(max(m.width-2, 10)).Render(b.String())
}

func (m Model) drawerTop() int {
	return max(m.height()-lipgloss.Height(m.renderDrawer()), 0)
}

func setRow(rows []string, i int, s string) {
	if i >= 0 && i < len(rows) {
		rows[i] = s
	}
}

// fitWidth truncates or pads s to exactly w cells.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > w {
		s = ansi.Truncate(s, w, "")
	}
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
