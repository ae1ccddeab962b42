package swipe

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestWindow_Neighbours(t *testing.T) {
	tests := []struct {
		name   string
		active int
		count  int
		loop   bool
		want   []Slot
	}{
		{name: "middle", active: 2, count: 5, want: []Slot{{1, -1}, {2, 0}, {3, 1}}},
		{name: "first no loop", active: 0, count: 5, want: []Slot{{0, 0}, {1, 1}}},
		{name: "last no loop", active: 4, count: 5, want: []Slot{{3, -1}, {4, 0}}},
		{name: "first loop", active: 0, count: 5, loop: true, want: []Slot{{4, -1}, {0, 0}, {1, 1}}},
		{name: "last loop", active: 4, count: 5, loop: true, want: []Slot{{3, -1}, {4, 0}, {0, 1}}},
		{name: "single", active: 0, count: 1, loop: true, want: []Slot{{0, 0}}},
		{name: "empty", active: 0, count: 0, want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Window(tc.active, tc.count, tc.loop)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("window mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(-1, 5) != 4 || Wrap(5, 5) != 0 || Wrap(-6, 5) != 4 || Wrap(3, 0) != 0 {
		t.Fatalf("wrap arithmetic broken")
	}
}

func TestVisibility(t *testing.T) {
	if got := Visibility(0, 40, 0); got != 1 {
		t.Fatalf("resting active item should cover everything, got %v", got)
	}
	if got := Visibility(-10, 40, 1); got != 0.25 {
		t.Fatalf("next item 10 rows in should cover 25%%, got %v", got)
	}
	if got := Visibility(-10, 40, -1); got != 0 {
		t.Fatalf("previous item must be off screen, got %v", got)
	}
}

func TestDetector_IgnoresFastFlicker(t *testing.T) {
	d := NewDetector(0.8, 100*time.Millisecond)
	t0 := time.Unix(0, 0)
	d.Observe(1, 0.9, t0)
	d.Observe(2, 0.9, t0.Add(50*time.Millisecond))
	if _, changed := d.Observe(2, 0.9, t0.Add(120*time.Millisecond)); changed {
		t.Fatalf("candidate 2 has only been visible for 70ms")
	}
	if idx, changed := d.Observe(2, 0.9, t0.Add(160*time.Millisecond)); !changed || idx != 2 {
		t.Fatalf("expected settle on 2, got %d %v", idx, changed)
	}
}

func TestDetector_RequiresThresholdCoverage(t *testing.T) {
	d := NewDetector(0.8, 10*time.Millisecond)
	t0 := time.Unix(0, 0)
	d.Observe(3, 0.7, t0)
	if _, changed := d.Observe(3, 0.79, t0.Add(time.Second)); changed || d.Pending() {
		t.Fatalf("items under 80%% visibility must never settle")
	}
}

func TestTapTracker_DoubleTapWindow(t *testing.T) {
	tt := NewTapTracker(300 * time.Millisecond)
	t0 := time.Unix(0, 0)
	if tt.Tap("a", t0) {
		t.Fatalf("first tap cannot be a double tap")
	}
	if !tt.Tap("a", t0.Add(200*time.Millisecond)) {
		t.Fatalf("expected double tap within window")
	}
	if tt.Tap("b", t0.Add(250*time.Millisecond)) {
		t.Fatalf("taps on different items must not combine")
	}
	if tt.Tap("b", t0.Add(700*time.Millisecond)) {
		t.Fatalf("taps outside the window must not combine")
	}
}

func TestViewport_ReservesChromeRows(t *testing.T) {
	v := NewViewport(24, 2)
	if v.Height() != 22 {
		t.Fatalf("expected 22 rows, got %d", v.Height())
	}
	if v.Resize(24) {
		t.Fatalf("same size must not report a change")
	}
	if !v.Resize(1) || v.Height() != 1 {
		t.Fatalf("height must stay at least one row, got %d", v.Height())
	}
}

func TestPosition_SetActiveClampsAndAnimates(t *testing.T) {
	p := NewPosition(5, 800)
	p.DragTo(-120)
	if p.Animated() {
		t.Fatalf("drag must disable the transition")
	}
	p.SetActive(9)
	if p.Active() != 4 || p.Offset() != -3200 || !p.Animated() {
		t.Fatalf("unexpected position %+v", p)
	}
	p.SetActive(-3)
	if p.Active() != 0 || p.Offset() != 0 {
		t.Fatalf("negative index must clamp to 0, got %+v", p)
	}
}
