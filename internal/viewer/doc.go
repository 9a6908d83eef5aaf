// Package viewer implements the product image viewer's transform engine.
//
// A Viewer holds a zoom factor and a rotation accumulator for the subject on
// display. Each operation mutates that state and then pushes it to a Sink;
// the displayed transform is always scale(zoom) rotate(rotation), computed
// from state and never accumulated in the view.
//
// Zoom is clamped to [0.5, 3.0]. Buttons move it by 0.25 and wheel ticks by
// 0.1. Rotation moves in 90° steps and is unbounded; Transform.Rendered folds
// it into [0, 360). Opening a new subject resets both.
//
// StartSweep runs a timed 360° animation: 36 steps of 10°, one per
// SweepInterval, ending at exactly 0°. The returned Sweep handle is cancelled
// by Close, by Open, or by another StartSweep (cancel-and-restart), so no
// timer outlives the viewer instance that scheduled it. Timers are delivered
// through a schedule.Scheduler so they run on the same event loop as every
// other handler.
package viewer
