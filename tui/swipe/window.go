package swipe

// Slot is one mounted item of the transform window.
type Slot struct {
	Index int // logical product index
	Rel   int // -1 above the active item, 0 active, +1 below
}

// Window returns the mounted slots around active, top to bottom. Without
// looping, neighbours past either end are left out; with looping they wrap.
func Window(active, count int, loop bool) []Slot {
	if count <= 0 {
		return nil
	}
	active = clampIndex(active, count)
	if count == 1 {
		return []Slot{{Index: active}}
	}
	slots := make([]Slot, 0, 3)
	for rel := -1; rel <= 1; rel++ {
		i := active + rel
		if i < 0 || i >= count {
			if !loop {
				continue
			}
			i = Wrap(i, count)
		}
		slots = append(slots, Slot{Index: i, Rel: rel})
	}
	return slots
}

// Wrap maps any index onto [0, n).
func Wrap(index, n int) int {
	if n <= 0 {
		return 0
	}
	return ((index % n) + n) % n
}

// Visibility is the fraction of the viewport covered by the slot at rel when
// the active item is displaced by relOffset.
func Visibility(relOffset, height float64, rel int) float64 {
	if height <= 0 {
		return 0
	}
	top := relOffset + float64(rel)*height
	bottom := top + height
	covered := min(bottom, height) - max(top, 0)
	if covered <= 0 {
		return 0
	}
	return covered / height
}
