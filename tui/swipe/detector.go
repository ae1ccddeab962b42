package swipe

import "time"

// Detector decides which item is "current" from visibility observations. An
// item must cover at least the threshold fraction of the viewport for the
// whole debounce interval before it settles, so fast transitions do not
// flicker through intermediate items.
type Detector struct {
	threshold float64
	debounce  time.Duration

	candidate    int
	hasCandidate bool
	since        time.Time
	settled      int
}

// NewDetector starts settled on the first item.
func NewDetector(threshold float64, debounce time.Duration) Detector {
	return Detector{threshold: threshold, debounce: debounce}
}

// Observe records that index covers fraction of the viewport at now. It
// returns the settled index and whether it just changed.
func (d *Detector) Observe(index int, fraction float64, now time.Time) (int, bool) {
	if fraction < d.threshold {
		if d.hasCandidate && d.candidate == index {
			d.hasCandidate = false
		}
		return d.settled, false
	}
	if !d.hasCandidate || d.candidate != index {
		d.candidate = index
		d.hasCandidate = true
		d.since = now
	}
	if d.candidate == d.settled {
		d.hasCandidate = false
		return d.settled, false
	}
	if now.Sub(d.since) < d.debounce {
		return d.settled, false
	}
	d.settled = d.candidate
	d.hasCandidate = false
	return d.settled, true
}

// Pending reports whether a candidate is waiting out the debounce.
func (d Detector) Pending() bool {
	return d.hasCandidate
}

// Due is the time at which the pending candidate may settle.
func (d Detector) Due() time.Time {
	return d.since.Add(d.debounce)
}

// Settled is the last settled index.
func (d Detector) Settled() int {
	return d.settled
}

// Reset forgets any candidate and settles on index.
func (d *Detector) Reset(index int) {
	d.settled = index
	d.hasCandidate = false
}
