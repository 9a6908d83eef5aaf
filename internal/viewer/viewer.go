package viewer

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"github.com/five82/chased/internal/schedule"
)

// Zoom and rotation limits.
const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	DefaultZoom = 1.0

	ButtonZoomStep = 0.25
	WheelZoomStep  = 0.1
	RotateStep     = 90.0
)

// 360° sweep timing.
const (
	SweepSteps       = 36
	SweepStepDegrees = 10
	SweepInterval    = 30 * time.Millisecond
)

// Subject is the image currently on display along with its caption.
type Subject struct {
	ImageRef  string
	Name      string
	PriceText string
}

// Transform is the zoom and rotation applied to the displayed image.
// Rotation is an unbounded accumulator; Rendered folds it into [0, 360).
type Transform struct {
	Zoom     float64
	Rotation float64
}

// Identity is the transform applied when a subject is opened or reset.
func Identity() Transform {
	return Transform{Zoom: DefaultZoom}
}

// Rendered returns the display angle in degrees, in [0, 360).
func (t Transform) Rendered() float64 {
	r := math.Mod(t.Rotation, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// Matrix composes scale(zoom) then rotate(rotation) into an affine matrix.
func (t Transform) Matrix() gg.Matrix {
	return gg.Scale(t.Zoom, t.Zoom).Multiply(gg.Rotate(t.Rotation * math.Pi / 180))
}

// CSS renders the transform as "scale(z) rotate(θdeg)".
func (t Transform) CSS() string {
	return fmt.Sprintf("scale(%s) rotate(%sdeg)",
		strconv.FormatFloat(t.Zoom, 'f', -1, 64),
		strconv.FormatFloat(t.Rotation, 'f', -1, 64))
}

// Sink receives viewer state for display. Any method may be a no-op when the
// view is not mounted.
type Sink interface {
	RenderTransform(zoom, rotationDegrees float64)
	OpenSubject(s Subject)
	CloseViewer()
}

// Viewer owns the transform state for whichever image is being viewed. It is
// driven from a single event loop and is not safe for concurrent use.
type Viewer struct {
	sink     Sink
	sched    schedule.Scheduler
	logger   *zap.Logger
	interval time.Duration

	open      bool
	subject   Subject
	transform Transform
	sweep     *Sweep
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithSink attaches the render target.
func WithSink(s Sink) Option {
	return func(v *Viewer) { v.sink = s }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(v *Viewer) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithSweepInterval overrides the delay between sweep steps.
func WithSweepInterval(d time.Duration) Option {
	return func(v *Viewer) {
		if d > 0 {
			v.interval = d
		}
	}
}

// New returns a closed viewer whose sweep timers are scheduled on sched.
func New(sched schedule.Scheduler, opts ...Option) *Viewer {
	v := &Viewer{
		sched:     sched,
		logger:    zap.NewNop(),
		interval:  SweepInterval,
		transform: Identity(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetSink swaps the render target. Passing nil detaches it.
func (v *Viewer) SetSink(s Sink) {
	v.sink = s
}

// IsOpen reports whether a subject is on display.
func (v *Viewer) IsOpen() bool {
	return v.open
}

// Subject returns the subject on display.
func (v *Viewer) Subject() Subject {
	return v.subject
}

// Transform returns the current transform.
func (v *Viewer) Transform() Transform {
	return v.transform
}

// Sweeping reports whether a 360° sweep is in progress.
func (v *Viewer) Sweeping() bool {
	return v.sweep != nil && v.sweep.Active()
}

// Open displays a new subject, resetting zoom and rotation and cancelling
// any sweep that belonged to the previous subject.
func (v *Viewer) Open(s Subject) {
	v.cancelSweep()
	v.subject = s
	v.transform = Identity()
	v.open = true
	v.logger.Debug("viewer opened", zap.String("name", s.Name), zap.String("image", s.ImageRef))
	if v.sink != nil {
		v.sink.OpenSubject(s)
	}
	v.render()
}

// Close hides the viewer. Any running sweep is cancelled.
func (v *Viewer) Close() {
	v.cancelSweep()
	if !v.open {
		return
	}
	v.open = false
	v.logger.Debug("viewer closed", zap.String("name", v.subject.Name))
	if v.sink != nil {
		v.sink.CloseViewer()
	}
}

// ZoomIn increases zoom by one button step.
func (v *Viewer) ZoomIn() {
	v.setZoom(v.transform.Zoom + ButtonZoomStep)
}

// ZoomOut decreases zoom by one button step.
func (v *Viewer) ZoomOut() {
	v.setZoom(v.transform.Zoom - ButtonZoomStep)
}

// Wheel applies one continuous-input tick. Negative delta (scroll up) zooms
// in, positive zooms out, zero is ignored.
func (v *Viewer) Wheel(delta float64) {
	switch {
	case delta < 0:
		v.setZoom(v.transform.Zoom + WheelZoomStep)
	case delta > 0:
		v.setZoom(v.transform.Zoom - WheelZoomStep)
	}
}

// Reset restores zoom 1 and rotation 0.
func (v *Viewer) Reset() {
	v.transform = Identity()
	v.render()
}

// RotateLeft turns the image 90° counter-clockwise.
func (v *Viewer) RotateLeft() {
	v.transform.Rotation -= RotateStep
	v.render()
}

// RotateRight turns the image 90° clockwise.
func (v *Viewer) RotateRight() {
	v.transform.Rotation += RotateStep
	v.render()
}

// StartSweep begins the animated 360° rotation. A sweep already in progress
// is cancelled and restarted. While the viewer is closed the returned handle
// is inert and nothing is scheduled.
func (v *Viewer) StartSweep() *Sweep {
	v.cancelSweep()
	s := &Sweep{viewer: v}
	if !v.open || v.sched == nil {
		s.done = true
		return s
	}
	v.sweep = s
	s.stop = v.sched.After(v.interval, s.tick)
	v.logger.Debug("sweep started", zap.Duration("interval", v.interval))
	return s
}

func (v *Viewer) cancelSweep() {
	if v.sweep != nil {
		v.sweep.Cancel()
	}
}

func (v *Viewer) setZoom(z float64) {
	v.transform.Zoom = clampZoom(z)
	v.render()
}

func (v *Viewer) render() {
	if v.sink == nil {
		return
	}
	v.sink.RenderTransform(v.transform.Zoom, v.transform.Rotation)
}

func clampZoom(z float64) float64 {
	// Round away float noise from repeated 0.1 steps.
	z = math.Round(z*100) / 100
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}
