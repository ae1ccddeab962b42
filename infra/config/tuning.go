package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/productfinder/productfinder/tui/swipe"
)

// Tuning overrides feed gesture settings from an optional YAML file:
//
//	flick_viewports_per_ms: 0.000375
//	distance_fraction: 0.2
//	loop: true
//	double_tap_window: 300ms
//	debounce: 100ms
//	wheel_coalesce: 60ms
type Tuning struct {
	FlickViewportsPerMs *float64       `yaml:"flick_viewports_per_ms"`
	DistanceFraction    *float64       `yaml:"distance_fraction"`
	Loop                *bool          `yaml:"loop"`
	DoubleTapWindow     *time.Duration `yaml:"double_tap_window"`
	Debounce            *time.Duration `yaml:"debounce"`
	WheelCoalesce       *time.Duration `yaml:"wheel_coalesce"`
}

// TuningTemplate seeds a new tuning file. Every key is optional.
const TuningTemplate = `# Product Finder feed tuning. Uncomment a key to override its default.
#
# Release speed, in screen heights per millisecond, that always changes item.
# flick_viewports_per_ms: 0.000375
# Share of the screen a slow drag must cover to change item.
# distance_fraction: 0.2
# Wrap from the last product back to the first.
# loop: false
# double_tap_window: 300ms
# debounce: 100ms
# wheel_coalesce: 60ms
`

// DefaultDoubleTapWindow is used when the tuning file does not set one.
const DefaultDoubleTapWindow = 300 * time.Millisecond

// LoadTuning returns empty tuning when the file does not exist.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Tuning{}, nil
		}
		return Tuning{}, fmt.Errorf("reading feed tuning: %w", err)
	}
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parsing feed tuning: %w", err)
	}
	if t.DistanceFraction != nil && (*t.DistanceFraction <= 0 || *t.DistanceFraction >= 1) {
		return Tuning{}, fmt.Errorf("parsing feed tuning: distance_fraction must be in (0, 1)")
	}
	if t.FlickViewportsPerMs != nil && *t.FlickViewportsPerMs <= 0 {
		return Tuning{}, fmt.Errorf("parsing feed tuning: flick_viewports_per_ms must be positive")
	}
	return t, nil
}

// Apply layers the overrides onto base.
func (t Tuning) Apply(base swipe.Config) swipe.Config {
	if t.FlickViewportsPerMs != nil {
		base.FlickViewportsPerMs = *t.FlickViewportsPerMs
	}
	if t.DistanceFraction != nil {
		base.DistanceFraction = *t.DistanceFraction
	}
	if t.Loop != nil {
		base.Loop = *t.Loop
	}
	if t.Debounce != nil {
		base.Debounce = *t.Debounce
	}
	if t.WheelCoalesce != nil {
		base.WheelCoalesce = *t.WheelCoalesce
	}
	return base
}

// DoubleTap returns the configured double-tap window.
func (t Tuning) DoubleTap() time.Duration {
	if t.DoubleTapWindow != nil && *t.DoubleTapWindow > 0 {
		return *t.DoubleTapWindow
	}
	return DefaultDoubleTapWindow
}
