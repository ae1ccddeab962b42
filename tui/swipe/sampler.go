package swipe

import (
	"math"
	"time"
)

// Release is the end state of one pointer session.
type Release struct {
	Displacement float64 // final y - start y
	DX           float64 // final x - start x
	Velocity     float64 // units/ms at release, signed like Displacement
	Offset       float64 // where the feed was dragged to at release
	Duration     time.Duration
	Horizontal   bool // horizontal movement dominated; vertical values are zeroed
	Cancelled    bool
}

// Sampler turns pointer samples into offsets and a release velocity. Only one
// session is open at a time.
type Sampler struct {
	staleAfter time.Duration

	active      bool
	startX      float64
	startY      float64
	startOffset float64
	startT      time.Time
	lastX       float64
	lastY       float64
	lastT       time.Time
	velocity    float64
}

// NewSampler creates a sampler that drops the release velocity after the
// pointer rested for staleAfter.
func NewSampler(staleAfter time.Duration) Sampler {
	return Sampler{staleAfter: staleAfter}
}

// Active reports whether a session is open.
func (s Sampler) Active() bool {
	return s.active
}

// Begin opens a session at the given pointer position. currentOffset is the
// visual offset at the moment of contact. A session that is still open is
// cancelled first and its release returned with ok=true.
func (s *Sampler) Begin(x, y float64, t time.Time, currentOffset float64) (prev Release, ok bool) {
	if s.active {
		prev, ok = s.Cancel()
	}
	s.active = true
	s.startX, s.startY = x, y
	s.lastX, s.lastY = x, y
	s.startT, s.lastT = t, t
	s.startOffset = currentOffset
	s.velocity = 0
	return prev, ok
}

// Update records a movement sample and returns the offset the feed should be
// dragged to. apply is false when no session is open or the gesture is
// horizontal.
func (s *Sampler) Update(x, y float64, t time.Time) (offset float64, apply bool) {
	if !s.active {
		return 0, false
	}
	s.sample(x, y, t)
	if s.horizontal(x, y) {
		return 0, false
	}
	return s.startOffset + (y - s.startY), true
}

// End closes the session with a final sample.
func (s *Sampler) End(x, y float64, t time.Time) (Release, bool) {
	if !s.active {
		return Release{}, false
	}
	if y == s.lastY && x == s.lastX {
		if t.Sub(s.lastT) > s.staleAfter {
			s.velocity = 0
		}
	} else {
		s.sample(x, y, t)
	}
	r := Release{
		Displacement: y - s.startY,
		DX:           x - s.startX,
		Velocity:     s.velocity,
		Offset:       s.startOffset + (y - s.startY),
		Duration:     t.Sub(s.startT),
	}
	if s.horizontal(x, y) {
		r.Horizontal = true
		r.Displacement = 0
		r.Velocity = 0
		r.Offset = s.startOffset
	}
	s.active = false
	return r, true
}

// Cancel closes the session at the last known position with zero velocity.
func (s *Sampler) Cancel() (Release, bool) {
	if !s.active {
		return Release{}, false
	}
	r := Release{
		Displacement: s.lastY - s.startY,
		DX:           s.lastX - s.startX,
		Offset:       s.startOffset + (s.lastY - s.startY),
		Duration:     s.lastT.Sub(s.startT),
		Cancelled:    true,
	}
	if s.horizontal(s.lastX, s.lastY) {
		r.Horizontal = true
		r.Displacement = 0
		r.Offset = s.startOffset
	}
	s.active = false
	return r, true
}

func (s *Sampler) sample(x, y float64, t time.Time) {
	dt := float64(t.Sub(s.lastT)) / float64(time.Millisecond)
	if dt <= 0 {
		// Same-timestamp samples fold into the next one.
		return
	}
	s.velocity = (y - s.lastY) / dt
	s.lastX, s.lastY, s.lastT = x, y, t
}

func (s *Sampler) horizontal(x, y float64) bool {
	return math.Abs(x-s.startX) > math.Abs(y-s.startY)
}
