package drag

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/geometry"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(a, b geometry.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
})

type fakeHost struct {
	origin    geometry.Point
	hasOrigin bool
	seg       geometry.Segment
	starts    []geometry.Point
	ends      []geometry.Point
}

func (h *fakeHost) Origin() (geometry.Point, bool) { return h.origin, h.hasOrigin }
func (h *fakeHost) Segment() geometry.Segment      { return h.seg }
func (h *fakeHost) SetStart(p geometry.Point) {
	h.seg.Start = p
	h.starts = append(h.starts, p)
}
func (h *fakeHost) SetEnd(p geometry.Point) {
	h.seg.End = p
	h.ends = append(h.ends, p)
}

// countingListeners wraps a Dispatcher and counts outstanding leases.
type countingListeners struct {
	Dispatcher
	acquired, released int
}

func newCountingListeners() *countingListeners {
	l := &countingListeners{}
	l.OnAcquire = func() { l.acquired++ }
	l.OnRelease = func() { l.released++ }
	return l
}

func (l *countingListeners) outstanding() int { return l.acquired - l.released }

type fixture struct {
	host      *fakeHost
	store     *colorstop.Store
	listeners *countingListeners
	ctrl      *Controller
}

func newFixture(seg geometry.Segment) *fixture {
	f := &fixture{
		host:      &fakeHost{hasOrigin: true, seg: seg},
		store:     colorstop.NewStore(colorstop.NewCollection(colorstop.DefaultStops()...)),
		listeners: newCountingListeners(),
	}
	f.ctrl = NewController(f.host, f.store, f.listeners)
	return f
}

func (f *fixture) offset(t *testing.T, id colorstop.ID) float64 {
	t.Helper()
	s, ok := f.store.Colors().Find(id)
	if !ok {
		t.Fatalf("stop %s missing", id)
	}
	return s.Offset
}

func TestInitialStateIsIdle(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(100, 0)))
	if !f.ctrl.Target().IsNone() || f.ctrl.Dragging() {
		t.Errorf("Target = %v, want none", f.ctrl.Target())
	}
	if f.listeners.Active() {
		t.Error("listeners attached while idle")
	}
}

func TestHandleDragPreservesGrabOffset(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(10, 10), geometry.Pt(110, 10)))

	if !f.ctrl.PointerDown(EndHandle(), geometry.Pt(120, 20)) {
		t.Fatal("PointerDown on end handle did not transition")
	}
	diff(t, EndHandle(), f.ctrl.Target(), cmp.AllowUnexported(Target{}))

	f.listeners.Move(geometry.Pt(160, 60))
	diff(t, []geometry.Point{geometry.Pt(150, 50)}, f.host.ends, pointComparer)
	if len(f.host.starts) != 0 {
		t.Errorf("start moved during end drag: %v", f.host.starts)
	}
}

func TestStartHandleDragWithOrigin(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(600, 600)))
	f.host.origin = geometry.Pt(400, 50)

	f.ctrl.PointerDown(StartHandle(), geometry.Pt(403, 46))

	f.listeners.Move(geometry.Pt(500, 150))
	f.listeners.Move(geometry.Pt(-500, -1000))
	diff(t, []geometry.Point{geometry.Pt(97, 104), geometry.Pt(-903, -1046)}, f.host.starts, pointComparer)
}

func TestPointerDownWithoutOriginIsDropped(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(100, 0)))
	f.host.hasOrigin = false

	for _, target := range []Target{StartHandle(), EndHandle(), Stop("2")} {
		if f.ctrl.PointerDown(target, geometry.Pt(5, 5)) {
			t.Errorf("PointerDown(%v) transitioned without origin", target)
		}
	}
	if f.ctrl.Dragging() {
		t.Errorf("Target = %v, want none", f.ctrl.Target())
	}
	if f.listeners.acquired != 0 {
		t.Errorf("acquired %d leases without origin", f.listeners.acquired)
	}
}

func TestPointerMoveWithoutOriginIsDropped(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(100, 0)))
	f.ctrl.PointerDown(StartHandle(), geometry.Pt(0, 0))
	f.host.hasOrigin = false
	f.listeners.Move(geometry.Pt(50, 50))

	if len(f.host.starts) != 0 {
		t.Errorf("start moved without origin: %v", f.host.starts)
	}
	diff(t, StartHandle(), f.ctrl.Target(), cmp.AllowUnexported(Target{}))
}

func TestStopDragJumpsToProjection(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(10, 10), geometry.Pt(110, 10)))

	// Grab stop 2 (rendered at 60,10) well off its centre.
	if !f.ctrl.PointerDown(Stop("2"), geometry.Pt(64, 13)) {
		t.Fatal("PointerDown on stop did not transition")
	}
	if got := f.offset(t, "2"); got != 50 {
		t.Errorf("offset before move = %v, want 50", got)
	}

	f.listeners.Move(geometry.Pt(64, 13))
	if got := f.offset(t, "2"); math.Abs(got-54) > 1e-9 {
		t.Errorf("offset = %v, want 54 (projection of the pointer, not grab-preserving)", got)
	}

	f.listeners.Move(geometry.Pt(1000, 10))
	if got := f.offset(t, "2"); got != 100 {
		t.Errorf("offset = %v, want 100", got)
	}
	f.listeners.Move(geometry.Pt(-100, 10))
	if got := f.offset(t, "2"); got != 0 {
		t.Errorf("offset = %v, want 0", got)
	}
}

func TestStopDragUsesAxisCapturedAtStart(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(80, 60)))
	f.ctrl.PointerDown(Stop("1"), geometry.Pt(0, 0))

	// The host moves the axis behind the controller's back; the gesture
	// keeps projecting onto the original one.
	f.host.seg = geometry.Seg(geometry.Pt(0, 0), geometry.Pt(1000, 0))
	f.listeners.Move(geometry.Pt(20, 15))
	if got := f.offset(t, "1"); math.Abs(got-25) > 1e-9 {
		t.Errorf("offset = %v, want 25", got)
	}
	f.listeners.Move(geometry.Pt(72, 54))
	if got := f.offset(t, "1"); math.Abs(got-90) > 1e-9 {
		t.Errorf("offset = %v, want 90", got)
	}
}

func TestStopDragOnDegenerateAxis(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(30, 30), geometry.Pt(30, 30)))
	f.ctrl.PointerDown(Stop("2"), geometry.Pt(30, 30))
	f.listeners.Move(geometry.Pt(500, 500))
	got := f.offset(t, "2")
	if math.IsNaN(got) || got < 0 || got > 100 {
		t.Errorf("offset = %v, want value in [0,100]", got)
	}
}

func TestSameStopPointerDownIsIgnored(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(100, 0)))
	var changes int
	f.ctrl.OnChange = func(_, _ Target) { changes++ }

	f.ctrl.PointerDown(Stop("2"), geometry.Pt(50, 0))
	if f.ctrl.PointerDown(Stop("2"), geometry.Pt(50, 0)) {
		t.Error("second PointerDown on the active stop transitioned")
	}
	if changes != 1 {
		t.Errorf("changes = %d, want 1", changes)
	}
	if f.listeners.acquired != 1 {
		t.Errorf("acquired = %d, want 1", f.listeners.acquired)
	}
}

func TestPointerUpReturnsToIdleAndReleases(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(10, 10), geometry.Pt(110, 10)))
	f.ctrl.PointerDown(EndHandle(), geometry.Pt(120, 20))

	f.listeners.Up()
	if f.ctrl.Dragging() {
		t.Errorf("Target = %v after up, want none", f.ctrl.Target())
	}
	if f.listeners.outstanding() != 0 || f.listeners.Active() {
		t.Errorf("listeners still attached after up (outstanding %d)", f.listeners.outstanding())
	}

	// Moves after release reach nobody.
	f.listeners.Move(geometry.Pt(0, 0))
	f.ctrl.PointerMove(geometry.Pt(0, 0))
	if len(f.host.ends) != 0 {
		t.Errorf("end moved after release: %v", f.host.ends)
	}

	// The next gesture grabs the start handle dead centre; no offset from
	// the previous drag carries over.
	f.ctrl.PointerDown(StartHandle(), geometry.Pt(10, 10))
	f.listeners.Move(geometry.Pt(30, 40))
	diff(t, []geometry.Point{geometry.Pt(30, 40)}, f.host.starts, pointComparer)
}

func TestPointerUpWhileIdleIsNoop(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(1, 1)))
	var changes int
	f.ctrl.OnChange = func(_, _ Target) { changes++ }
	f.ctrl.PointerUp()
	if changes != 0 {
		t.Errorf("changes = %d, want 0", changes)
	}
}

func TestSwitchingTargetsReleasesPreviousLease(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(100, 0)))
	f.ctrl.PointerDown(Stop("1"), geometry.Pt(0, 0))
	f.ctrl.PointerDown(StartHandle(), geometry.Pt(0, 0))

	diff(t, StartHandle(), f.ctrl.Target(), cmp.AllowUnexported(Target{}))
	if f.listeners.outstanding() != 1 {
		t.Errorf("outstanding leases = %d, want 1", f.listeners.outstanding())
	}
	f.listeners.Move(geometry.Pt(5, 5))
	if got := f.offset(t, "1"); got != 0 {
		t.Errorf("stale stop listener moved stop 1 to %v", got)
	}
	diff(t, []geometry.Point{geometry.Pt(5, 5)}, f.host.starts, pointComparer)
}

func TestCloseReleasesListeners(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(100, 0)))
	f.ctrl.PointerDown(Stop("3"), geometry.Pt(100, 0))
	f.ctrl.Close()
	if f.ctrl.Dragging() || f.listeners.outstanding() != 0 {
		t.Errorf("Close left target %v with %d leases", f.ctrl.Target(), f.listeners.outstanding())
	}
	f.ctrl.Close()
	if f.listeners.released != 1 {
		t.Errorf("released = %d, want 1", f.listeners.released)
	}
}

func TestTransitionsReported(t *testing.T) {
	f := newFixture(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(100, 0)))
	var got []string
	f.ctrl.OnChange = func(from, to Target) { got = append(got, from.String()+"->"+to.String()) }

	f.ctrl.PointerDown(StartHandle(), geometry.Pt(0, 0))
	f.ctrl.PointerUp()
	f.ctrl.PointerDown(Stop("2"), geometry.Pt(50, 0))
	f.ctrl.PointerUp()

	diff(t, []string{"none->start", "start->none", "none->stop(2)", "stop(2)->none"}, got)
}
