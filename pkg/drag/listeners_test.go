package drag

import (
	"testing"

	"gradient-frame/pkg/geometry"
)

func TestDispatcherLease(t *testing.T) {
	var d Dispatcher
	var acquired, released int
	d.OnAcquire = func() { acquired++ }
	d.OnRelease = func() { released++ }

	var moves []geometry.Point
	var ups int
	release := d.Listen(func(p geometry.Point) { moves = append(moves, p) }, func() { ups++ })

	d.Move(geometry.Pt(1, 2))
	d.Up()
	release()
	release()
	d.Move(geometry.Pt(3, 4))
	d.Up()

	if len(moves) != 1 || ups != 1 {
		t.Errorf("moves = %v, ups = %d; want one of each", moves, ups)
	}
	if acquired != 1 || released != 1 {
		t.Errorf("acquired = %d, released = %d; want 1, 1", acquired, released)
	}
}

func TestDispatcherStaleReleaseKeepsNewLease(t *testing.T) {
	var d Dispatcher
	var first, second int
	releaseFirst := d.Listen(func(geometry.Point) { first++ }, nil)
	d.Listen(func(geometry.Point) { second++ }, nil)

	releaseFirst()
	d.Move(geometry.Pt(0, 0))

	if first != 0 || second != 1 {
		t.Errorf("first = %d, second = %d; want 0, 1", first, second)
	}
	if !d.Active() {
		t.Error("stale release detached the current lease")
	}
}
