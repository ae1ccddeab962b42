package swipe

import "time"

// TapTracker detects double taps on the same item.
type TapTracker struct {
	window time.Duration
	lastID string
	lastAt time.Time
}

// NewTapTracker treats two taps within window as a double tap.
func NewTapTracker(window time.Duration) TapTracker {
	return TapTracker{window: window}
}

// Tap records a tap on id and reports whether it completes a double tap.
func (t *TapTracker) Tap(id string, now time.Time) bool {
	double := id != "" && id == t.lastID && !t.lastAt.IsZero() && now.Sub(t.lastAt) < t.window
	t.lastID = id
	t.lastAt = now
	return double
}
