package swipe

import "math"

// Decision is what a release does to the feed.
type Decision int

const (
	SnapBack Decision = iota
	CommitNext
	CommitPrev
)

func (d Decision) String() string {
	switch d {
	case CommitNext:
		return "next"
	case CommitPrev:
		return "prev"
	default:
		return "snap-back"
	}
}

// Outcome is the result of a snap decision.
type Outcome struct {
	Decision Decision
	From     int
	Target   int
	Wrapped  bool // target crossed the end of the list in loop mode
}

// Step is +1 for next, -1 for previous, 0 for a snap-back.
func (o Outcome) Step() int {
	switch o.Decision {
	case CommitNext:
		return 1
	case CommitPrev:
		return -1
	default:
		return 0
	}
}

// Decide applies the snap policy to a release: a flick above the velocity
// threshold commits one step in its direction, otherwise a drag beyond the
// distance threshold commits one step, otherwise the feed snaps back. The
// target is never more than one item away.
func Decide(r Release, current, count int, height float64, cfg Config) Outcome {
	dir := 0
	switch {
	case r.Horizontal:
	case math.Abs(r.Velocity) > cfg.FlickThreshold(height):
		dir = direction(r.Velocity)
	case math.Abs(r.Displacement) > cfg.DistanceThreshold(height):
		dir = direction(r.Displacement)
	}
	return stepOutcome(current, count, dir, cfg.Loop)
}

// direction maps the sign of pointer travel onto the feed: moving up goes to
// the next item.
func direction(v float64) int {
	if v < 0 {
		return 1
	}
	return -1
}

func stepOutcome(current, count, dir int, loop bool) Outcome {
	out := Outcome{Decision: SnapBack, From: current, Target: current}
	if dir == 0 || count <= 1 {
		return out
	}
	dir = max(-1, min(1, dir))
	target := current + dir
	if target < 0 || target >= count {
		if !loop {
			return out
		}
		target = Wrap(target, count)
		out.Wrapped = true
	}
	out.Target = target
	if dir > 0 {
		out.Decision = CommitNext
	} else {
		out.Decision = CommitPrev
	}
	return out
}
