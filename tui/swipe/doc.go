// Package swipe implements the gesture engine behind the immersive product
// feed: pointer sampling, the snap decision, the active-item position model,
// the transform window of mounted items and a debounced visibility detector.
//
// Offsets are vertical and measured in the same unit as the viewport height
// (terminal rows in the TUI). A resting feed always sits at
// offset == -active*height. Pointer movement up (negative displacement or
// velocity) advances to the next item; movement down goes to the previous
// one. A single release never moves more than one item.
//
// The package has no dependency on the render loop; callers feed it
// timestamps and drive the settle animation with Controller.Tick.
package swipe
