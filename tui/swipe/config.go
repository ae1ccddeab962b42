package swipe

import "time"

// Config tunes gesture thresholds and the settle animation.
type Config struct {
	// FlickViewportsPerMs is the release velocity, in viewport heights per
	// millisecond, above which a release always commits one step.
	FlickViewportsPerMs float64
	// DistanceFraction of the viewport height a slow drag must exceed to commit.
	DistanceFraction float64
	// Loop wraps the last item to the first and back.
	Loop bool
	// StaleVelocityAfter zeroes the release velocity when the pointer was held
	// still for longer than this before release.
	StaleVelocityAfter time.Duration
	// VisibleFraction an item must cover before the detector considers it.
	VisibleFraction float64
	// Debounce is how long a candidate must stay visible before it settles.
	Debounce time.Duration
	// WheelCoalesce is the quiet gap that ends a wheel burst.
	WheelCoalesce time.Duration

	FPS             int
	SpringFrequency float64
	SpringDamping   float64
}

// DefaultConfig matches 0.3 px/ms on an 800px viewport and a 20% drag distance.
func DefaultConfig() Config {
	return Config{
		FlickViewportsPerMs: 0.3 / 800,
		DistanceFraction:    0.2,
		Loop:                false,
		StaleVelocityAfter:  80 * time.Millisecond,
		VisibleFraction:     0.8,
		Debounce:            100 * time.Millisecond,
		WheelCoalesce:       60 * time.Millisecond,
		FPS:                 60,
		SpringFrequency:     12,
		SpringDamping:       1,
	}
}

// FlickThreshold is the absolute flick velocity (units/ms) for a viewport height.
func (c Config) FlickThreshold(height float64) float64 {
	return c.FlickViewportsPerMs * height
}

// DistanceThreshold is the absolute commit distance for a viewport height.
func (c Config) DistanceThreshold(height float64) float64 {
	return c.DistanceFraction * height
}

// FrameInterval is the delay between settle animation frames.
func (c Config) FrameInterval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
