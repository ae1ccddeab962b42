package swipe

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// State of the gesture state machine.
type State int

const (
	Idle State = iota
	Dragging
	Committing
	SnappingBack
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Committing:
		return "committing"
	case SnappingBack:
		return "snapping-back"
	default:
		return "idle"
	}
}

// settleDistance is how close the animation must get before it lands exactly.
const settleDistance = 0.5

// Controller runs Idle → Dragging → (Committing | SnappingBack) → Idle. It
// owns the position model and the displayed offset, which trails the model
// offset through a spring while a transition is animated.
type Controller struct {
	cfg     Config
	pos     Position
	sampler Sampler
	detect  Detector
	spring  harmonica.Spring
	state   State

	shown     float64
	velocity  float64
	lastWheel time.Time
}

// NewController creates a resting controller for count items.
func NewController(cfg Config, count int, height float64) Controller {
	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}
	c := Controller{
		cfg:     cfg,
		pos:     NewPosition(count, height),
		sampler: NewSampler(cfg.StaleVelocityAfter),
		detect:  NewDetector(cfg.VisibleFraction, cfg.Debounce),
		spring:  harmonica.NewSpring(harmonica.FPS(fps), cfg.SpringFrequency, cfg.SpringDamping),
	}
	c.shown = c.pos.Offset()
	return c
}

// Reset replaces the item list and rests at active without animating.
func (c *Controller) Reset(count, active int) {
	c.sampler.Cancel()
	c.pos.SetCount(count)
	c.pos.SetActive(active)
	c.land()
	c.detect.Reset(c.pos.Active())
}

// Resize applies a new viewport height.
func (c *Controller) Resize(height float64) {
	old := c.pos.Height()
	rel := c.shown - c.pos.Rest()
	c.pos.SetHeight(height)
	if old > 0 {
		rel *= height / old
	}
	c.shown = c.pos.Rest() + rel
	if c.state == Idle {
		c.shown = c.pos.Offset()
	}
}

// Press starts a drag. Grabbing the feed mid-animation continues from the
// displayed offset. A session left open by a lost release is settled first.
func (c *Controller) Press(x, y float64, t time.Time) {
	if prev, ok := c.sampler.Cancel(); ok {
		c.settle(prev)
	}
	c.sampler.Begin(x, y, t, c.shown)
	c.pos.DragTo(c.shown)
	c.velocity = 0
	c.state = Dragging
}

// Drag moves the feed with the pointer. It reports whether the offset changed.
func (c *Controller) Drag(x, y float64, t time.Time) bool {
	if c.state != Dragging {
		return false
	}
	off, ok := c.sampler.Update(x, y, t)
	if !ok {
		return false
	}
	c.pos.DragTo(off)
	c.shown = off
	return true
}

// Release ends the drag and decides where the feed goes.
func (c *Controller) Release(x, y float64, t time.Time) (Outcome, Release, bool) {
	if c.state != Dragging {
		return Outcome{}, Release{}, false
	}
	r, ok := c.sampler.End(x, y, t)
	if !ok {
		return Outcome{}, Release{}, false
	}
	return c.settle(r), r, true
}

// Cancel ends the drag as if released in place with zero velocity.
func (c *Controller) Cancel() (Outcome, bool) {
	if c.state != Dragging {
		return Outcome{}, false
	}
	r, ok := c.sampler.Cancel()
	if !ok {
		return Outcome{}, false
	}
	return c.settle(r), true
}

// Step commits one item in dir (+1 next, -1 previous), as keyboard
// navigation does. Ignored while dragging.
func (c *Controller) Step(dir int) Outcome {
	if c.state == Dragging {
		return Outcome{Decision: SnapBack, From: c.pos.Active(), Target: c.pos.Active()}
	}
	out := stepOutcome(c.pos.Active(), c.pos.Count(), dir, c.cfg.Loop)
	if out.Decision != SnapBack {
		c.apply(out)
	}
	return out
}

// Wheel steps on the first event of a burst. A burst lasts until the wheel
// has been quiet for WheelCoalesce, however long it runs.
func (c *Controller) Wheel(dir int, t time.Time) (Outcome, bool) {
	quiet := c.lastWheel.IsZero() || t.Sub(c.lastWheel) >= c.cfg.WheelCoalesce
	c.lastWheel = t
	if !quiet {
		return Outcome{}, false
	}
	return c.Step(dir), true
}

// Tick advances the settle animation by one frame and reports whether
// another frame is needed.
func (c *Controller) Tick() bool {
	if c.state != Committing && c.state != SnappingBack {
		return false
	}
	target := c.pos.Offset()
	c.shown, c.velocity = c.spring.Update(c.shown, c.velocity, target)
	if math.Abs(c.shown-target) < settleDistance {
		c.land()
		return false
	}
	return true
}

// Observe feeds the visibility detector with the item that currently covers
// most of the viewport.
func (c *Controller) Observe(now time.Time) (int, bool) {
	slots := c.Slots()
	if len(slots) == 0 {
		return 0, false
	}
	rel := c.shown - c.pos.Rest()
	best, bestFrac := slots[0], -1.0
	for _, s := range slots {
		if f := Visibility(rel, c.pos.Height(), s.Rel); f > bestFrac {
			best, bestFrac = s, f
		}
	}
	return c.detect.Observe(best.Index, bestFrac, now)
}

func (c *Controller) settle(r Release) Outcome {
	c.shown = r.Offset
	out := Decide(r, c.pos.Active(), c.pos.Count(), c.pos.Height(), c.cfg)
	c.apply(out)
	return out
}

func (c *Controller) apply(out Outcome) {
	switch out.Decision {
	case CommitNext, CommitPrev:
		oldRest := c.pos.Rest()
		c.pos.SetActive(out.Target)
		// Keep the pointer's physical position: the card that was below
		// (or above) is now the active one. For a wrap this rebases the
		// displayed offset into the new item's frame.
		c.shown = c.pos.Rest() + (c.shown - oldRest) + float64(out.Step())*c.pos.Height()
		c.state = Committing
	default:
		c.pos.SetActive(c.pos.Active())
		c.state = SnappingBack
	}
	if math.Abs(c.shown-c.pos.Offset()) < settleDistance {
		c.land()
	}
}

func (c *Controller) land() {
	c.shown = c.pos.Offset()
	c.velocity = 0
	c.state = Idle
}

// Slots are the mounted items around the active one.
func (c Controller) Slots() []Slot {
	return Window(c.pos.Active(), c.pos.Count(), c.cfg.Loop)
}

func (c Controller) State() State         { return c.state }
func (c Controller) Active() int          { return c.pos.Active() }
func (c Controller) Count() int           { return c.pos.Count() }
func (c Controller) Position() Position   { return c.pos }
func (c Controller) Height() float64      { return c.pos.Height() }
func (c Controller) Shown() float64       { return c.shown }
func (c Controller) Animating() bool      { return c.state == Committing || c.state == SnappingBack }
func (c Controller) Settled() int         { return c.detect.Settled() }
func (c Controller) SettlePending() bool  { return c.detect.Pending() }
func (c Controller) SettleDue() time.Time { return c.detect.Due() }
func (c Controller) Config() Config       { return c.cfg }

// RelativeShown is the displayed displacement of the active item from rest.
func (c Controller) RelativeShown() float64 {
	return c.shown - c.pos.Rest()
}
