package swipe

// Viewport tracks the usable feed height. The window reports its full size;
// rows taken by fixed chrome (status line, hints) are subtracted.
type Viewport struct {
	height   int
	reserved int
}

// NewViewport starts from the platform-provided window height.
func NewViewport(windowHeight, reserved int) Viewport {
	v := Viewport{reserved: max(reserved, 0)}
	v.Resize(windowHeight)
	return v
}

// Resize recomputes the height and reports whether it changed.
func (v *Viewport) Resize(windowHeight int) bool {
	h := max(windowHeight-v.reserved, 1)
	if h == v.height {
		return false
	}
	v.height = h
	return true
}

// Height is always at least one row.
func (v Viewport) Height() int {
	return max(v.height, 1)
}
