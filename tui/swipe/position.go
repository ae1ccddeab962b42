package swipe

// Position is the single source of truth for the active item and the visual
// offset of the feed. It is mutated only through SetActive and DragTo.
type Position struct {
	active   int
	count    int
	height   float64
	offset   float64
	animated bool
}

// NewPosition rests at the first item.
func NewPosition(count int, height float64) Position {
	p := Position{count: max(count, 0), height: height}
	p.SetActive(0)
	return p
}

// SetActive clamps index into [0, count-1], moves the offset to that item's
// rest position and enables the animated transition. It reports whether the
// active item changed.
func (p *Position) SetActive(index int) bool {
	index = clampIndex(index, p.count)
	changed := index != p.active
	p.active = index
	p.offset = p.Rest()
	p.animated = true
	return changed
}

// DragTo sets the offset directly with the transition disabled so the feed
// tracks the pointer exactly.
func (p *Position) DragTo(offset float64) {
	p.offset = offset
	p.animated = false
}

// SetCount replaces the item count, clamping the active index.
func (p *Position) SetCount(count int) {
	p.count = max(count, 0)
	p.active = clampIndex(p.active, p.count)
	p.offset = p.Rest()
	p.animated = false
}

// SetHeight updates the viewport height. A resting offset follows the new
// height; a dragged offset keeps its distance from the rest position.
func (p *Position) SetHeight(height float64) {
	rel := p.offset - p.Rest()
	p.height = height
	p.offset = p.Rest() + rel
}

func (p Position) Active() int       { return p.active }
func (p Position) Count() int        { return p.count }
func (p Position) Height() float64   { return p.height }
func (p Position) Offset() float64   { return p.offset }
func (p Position) Animated() bool    { return p.animated }
func (p Position) AtRest() bool      { return p.offset == p.Rest() }
func (p Position) Rest() float64     { return -float64(p.active) * p.height }
func (p Position) Relative() float64 { return p.offset - p.Rest() }

func clampIndex(index, count int) int {
	if count <= 0 || index < 0 {
		return 0
	}
	if index > count-1 {
		return count - 1
	}
	return index
}
