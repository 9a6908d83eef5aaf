package viewer

import (
	"math"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"go.uber.org/goleak"

	"github.com/five82/chased/internal/schedule"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingSink struct {
	transforms []Transform
	opened     []Subject
	closed     int
}

func (r *recordingSink) RenderTransform(zoom, rotation float64) {
	r.transforms = append(r.transforms, Transform{Zoom: zoom, Rotation: rotation})
}

func (r *recordingSink) OpenSubject(s Subject) { r.opened = append(r.opened, s) }

func (r *recordingSink) CloseViewer() { r.closed++ }

func (r *recordingSink) last() Transform {
	if len(r.transforms) == 0 {
		return Transform{}
	}
	return r.transforms[len(r.transforms)-1]
}

func openViewer(t *testing.T) (*Viewer, *recordingSink, *schedule.Manual) {
	t.Helper()
	sched := schedule.NewManual()
	sink := &recordingSink{}
	v := New(sched, WithSink(sink))
	v.Open(Subject{ImageRef: "img/dress.png", Name: "Maxi Dress", PriceText: "£45.00"})
	return v, sink, sched
}

func TestZoomClamping(t *testing.T) {
	v, sink, _ := openViewer(t)
	for i := 0; i < 20; i++ {
		v.ZoomIn()
		if z := v.Transform().Zoom; z > MaxZoom {
			t.Fatalf("zoom = %v after %d zoom-ins, exceeds %v", z, i+1, MaxZoom)
		}
	}
	if z := v.Transform().Zoom; z != MaxZoom {
		t.Fatalf("zoom = %v, want %v", z, MaxZoom)
	}

	v.Reset()
	for i := 0; i < 20; i++ {
		v.ZoomOut()
	}
	if z := v.Transform().Zoom; z != MinZoom {
		t.Fatalf("zoom = %v, want %v", z, MinZoom)
	}
	if got := sink.last().Zoom; got != MinZoom {
		t.Fatalf("rendered zoom = %v, want %v", got, MinZoom)
	}
}

func TestWheelZoom(t *testing.T) {
	v, _, _ := openViewer(t)

	v.Wheel(-1)
	v.Wheel(-120)
	if z := v.Transform().Zoom; z != 1.2 {
		t.Fatalf("zoom = %v after two wheel-ups, want 1.2", z)
	}
	v.Wheel(0)
	if z := v.Transform().Zoom; z != 1.2 {
		t.Fatalf("zoom = %v after zero delta, want 1.2", z)
	}
	for i := 0; i < 30; i++ {
		v.Wheel(3)
	}
	if z := v.Transform().Zoom; z != MinZoom {
		t.Fatalf("zoom = %v, want %v", z, MinZoom)
	}
	for i := 0; i < 30; i++ {
		v.Wheel(-3)
	}
	if z := v.Transform().Zoom; z != MaxZoom {
		t.Fatalf("zoom = %v, want %v", z, MaxZoom)
	}
}

func TestRotationWraparound(t *testing.T) {
	v, sink, _ := openViewer(t)
	for i := 0; i < 5; i++ {
		v.RotateRight()
	}
	tr := v.Transform()
	if tr.Rotation != 450 {
		t.Fatalf("raw rotation = %v, want 450", tr.Rotation)
	}
	if tr.Rendered() != 90 {
		t.Fatalf("rendered rotation = %v, want 90", tr.Rendered())
	}
	if sink.last().Rotation != 450 {
		t.Fatalf("sink rotation = %v, want 450", sink.last().Rotation)
	}

	v.Reset()
	v.RotateLeft()
	if got := v.Transform().Rendered(); got != 270 {
		t.Fatalf("rendered after rotate-left = %v, want 270", got)
	}
}

func TestSweepTerminatesAtZero(t *testing.T) {
	v, sink, sched := openViewer(t)
	v.RotateRight()

	s := v.StartSweep()
	if !s.Active() || !v.Sweeping() {
		t.Fatalf("sweep not active after start")
	}

	for i := 1; i <= SweepSteps; i++ {
		sched.Advance(SweepInterval)
		if s.Step() != i {
			t.Fatalf("step = %d after %d ticks", s.Step(), i)
		}
		if i < SweepSteps {
			want := float64((i * SweepStepDegrees) % 360)
			if got := v.Transform().Rotation; got != want {
				t.Fatalf("rotation after tick %d = %v, want %v", i, got, want)
			}
		}
	}

	if got := v.Transform().Rotation; got != 0 {
		t.Fatalf("final rotation = %v, want exactly 0", got)
	}
	if s.Active() || v.Sweeping() {
		t.Fatalf("sweep still active after %d ticks", SweepSteps)
	}
	if sched.Pending() != 0 {
		t.Fatalf("Pending = %d after sweep, want 0", sched.Pending())
	}

	renders := len(sink.transforms)
	sched.Advance(10 * SweepInterval)
	if len(sink.transforms) != renders {
		t.Fatalf("renders changed after termination: %d -> %d", renders, len(sink.transforms))
	}
	if v.Transform().Rotation != 0 {
		t.Fatalf("rotation moved after termination")
	}
}

func TestSweepHonoursCustomInterval(t *testing.T) {
	sched := schedule.NewManual()
	v := New(sched, WithSweepInterval(5*time.Millisecond))
	v.Open(Subject{Name: "Ring"})
	s := v.StartSweep()

	sched.Advance(5 * time.Millisecond * SweepSteps)
	if s.Active() {
		t.Fatalf("sweep still active at step %d", s.Step())
	}
}

func TestCloseMidSweepReleasesTimer(t *testing.T) {
	v, sink, sched := openViewer(t)
	s := v.StartSweep()
	sched.Advance(5 * SweepInterval)

	v.Close()
	if s.Active() {
		t.Fatalf("sweep active after close")
	}
	if sched.Pending() != 0 {
		t.Fatalf("Pending = %d after close, want 0", sched.Pending())
	}
	if sink.closed != 1 {
		t.Fatalf("CloseViewer calls = %d, want 1", sink.closed)
	}

	rotation := v.Transform().Rotation
	sched.Advance(time.Second)
	if v.Transform().Rotation != rotation {
		t.Fatalf("rotation changed after close")
	}

	v.Close()
	if sink.closed != 1 {
		t.Fatalf("second Close notified sink again")
	}
}

func TestSweepWhileClosedIsInert(t *testing.T) {
	sched := schedule.NewManual()
	v := New(sched)
	s := v.StartSweep()
	if s.Active() {
		t.Fatalf("sweep active on closed viewer")
	}
	if sched.Pending() != 0 {
		t.Fatalf("Pending = %d, want 0", sched.Pending())
	}
}

func TestSweepRetriggerCancelsAndRestarts(t *testing.T) {
	v, _, sched := openViewer(t)
	first := v.StartSweep()
	sched.Advance(10 * SweepInterval)

	second := v.StartSweep()
	if first.Active() {
		t.Fatalf("first sweep still active after restart")
	}
	if sched.Pending() != 1 {
		t.Fatalf("Pending = %d, want exactly one timer", sched.Pending())
	}

	sched.Advance(SweepInterval)
	if second.Step() != 1 {
		t.Fatalf("second.Step = %d, want 1", second.Step())
	}
	if v.Transform().Rotation != 10 {
		t.Fatalf("rotation = %v, want 10 from restarted sweep", v.Transform().Rotation)
	}
	if first.Step() != 10 {
		t.Fatalf("first.Step = %d, want 10 (frozen)", first.Step())
	}
}

func TestOpenNewSubjectResetsState(t *testing.T) {
	v, sink, sched := openViewer(t)
	for i := 0; i < 6; i++ {
		v.ZoomIn()
	}
	for i := 0; i < 3; i++ {
		v.RotateRight()
	}
	if tr := v.Transform(); tr.Zoom != 2.5 || tr.Rotation != 270 {
		t.Fatalf("setup transform = %+v, want zoom 2.5 rotation 270", tr)
	}
	s := v.StartSweep()

	next := Subject{ImageRef: "img/boots.png", Name: "Ankle Boots", PriceText: "£60.00"}
	v.Open(next)
	if tr := v.Transform(); tr.Zoom != 1.0 || tr.Rotation != 0 {
		t.Fatalf("transform after switch = %+v, want zoom 1 rotation 0", tr)
	}
	if v.Subject() != next {
		t.Fatalf("subject = %+v, want %+v", v.Subject(), next)
	}
	if s.Active() || sched.Pending() != 0 {
		t.Fatalf("previous subject's sweep survived the switch")
	}
	if got := sink.opened[len(sink.opened)-1]; got != next {
		t.Fatalf("sink opened %+v, want %+v", got, next)
	}
	if sink.last() != Identity() {
		t.Fatalf("last render = %+v, want identity", sink.last())
	}
}

func TestNilSinkIsSafe(t *testing.T) {
	v := New(schedule.NewManual())
	v.Open(Subject{Name: "Tee"})
	v.ZoomIn()
	v.RotateLeft()
	v.StartSweep()
	v.Close()
	if v.IsOpen() {
		t.Fatalf("viewer still open")
	}
}

func TestTransformMatrixAndCSS(t *testing.T) {
	tr := Transform{Zoom: 2, Rotation: 90}
	p := tr.Matrix().TransformPoint(gg.Pt(1, 0))
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-2) > 1e-9 {
		t.Fatalf("TransformPoint(1,0) = (%v,%v), want (0,2)", p.X, p.Y)
	}
	if got := tr.CSS(); got != "scale(2) rotate(90deg)" {
		t.Fatalf("CSS = %q", got)
	}
	if got := (Transform{Zoom: 1.25, Rotation: -90}).CSS(); got != "scale(1.25) rotate(-90deg)" {
		t.Fatalf("CSS = %q", got)
	}
	if got := (Transform{Rotation: -450}).Rendered(); got != 270 {
		t.Fatalf("Rendered(-450) = %v, want 270", got)
	}
}
