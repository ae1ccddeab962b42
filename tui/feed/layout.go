package feed

const railWidth = 10

type hitTarget int

const (
	hitNone hitTarget = iota
	hitLike
	hitReviews
	hitShare
	hitBuy
	hitCart
	hitDetails
)

type button struct {
	target hitTarget
	label  string
	x0, x1 int // half-open column range
}

// layout positions everything on a resting card. Rows are relative to the
// card top, which is the screen top when the feed rests.
type layout struct {
	width, height int
	contentWidth  int

	thumbTop, thumbRows, thumbCols int
	titleRow, categoryRow          int
	priceRow, actionsRow           int

	railLike, railReviews, railShare int
	buttons                          []button
}

var actionLabels = []struct {
	target hitTarget
	label  string
}{
	{hitBuy, "Buy Now"},
	{hitCart, "+ Add to Cart"},
	{hitDetails, "View Details"},
}

func (m Model) layout() layout {
	h := m.height()
	l := layout{
		width:        m.width,
		height:       h,
		contentWidth: max(m.width-railWidth, 10),
		thumbTop:     1,
		actionsRow:   h - 2,
		priceRow:     h - 4,
		categoryRow:  h - 5,
		titleRow:     h - 7,
	}
	if rows := h - 9; rows >= 2 {
		l.thumbRows = rows
		l.thumbCols = max(min(l.contentWidth-4, rows*3), 4)
	}

	mid := h / 2
	l.railLike, l.railReviews, l.railShare = mid-3, mid, mid+3

	x := 2
	for _, a := range actionLabels {
		w := len([]rune(a.label)) + 2 // one cell of padding on each side
		l.buttons = append(l.buttons, button{target: a.target, label: a.label, x0: x, x1: x + w})
		x += w + 2
	}
	return l
}

// hit maps a screen cell on the resting card to a control.
func (l layout) hit(x, y int) hitTarget {
	if x >= l.contentWidth {
		switch y {
		case l.railLike, l.railLike + 1:
			return hitLike
		case l.railReviews, l.railReviews + 1:
			return hitReviews
		case l.railShare, l.railShare + 1:
			return hitShare
		}
		return hitNone
	}
	if y == l.actionsRow {
		for _, b := range l.buttons {
			if x >= b.x0 && x < b.x1 {
				return b.target
			}
		}
	}
	return hitNone
}
