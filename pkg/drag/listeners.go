package drag

import (
	"sync"

	"gradient-frame/pkg/geometry"
)

// MoveFunc receives pointer positions in client coordinates.
type MoveFunc func(client geometry.Point)

// UpFunc is called when the pointer is released anywhere.
type UpFunc func()

// Listeners hands out move/up subscriptions for the duration of a drag.
// The returned release func detaches them; calling it more than once is
// harmless.
type Listeners interface {
	Listen(move MoveFunc, up UpFunc) (release func())
}

// Dispatcher is a single-slot Listeners: the host feeds every pointer move
// and release into it and it forwards them to whichever drag currently
// holds the lease. With no lease held, events go nowhere.
//
// OnAcquire and OnRelease let the host grab and free platform resources,
// e.g. global mouse capture, in step with the lease.
type Dispatcher struct {
	OnAcquire func()
	OnRelease func()

	move  MoveFunc
	up    UpFunc
	lease int
}

// Listen implements Listeners. A new lease replaces any previous one, which
// is released first.
func (d *Dispatcher) Listen(move MoveFunc, up UpFunc) func() {
	if d.Active() {
		d.detach()
	}
	d.lease++
	d.move, d.up = move, up
	if d.OnAcquire != nil {
		d.OnAcquire()
	}

	lease := d.lease
	var once sync.Once
	return func() {
		once.Do(func() {
			if d.lease == lease && d.Active() {
				d.detach()
			}
		})
	}
}

// Active reports whether a lease is currently held.
func (d *Dispatcher) Active() bool {
	return d.move != nil || d.up != nil
}

// Move forwards a pointer move to the lease holder.
func (d *Dispatcher) Move(client geometry.Point) {
	if d.move != nil {
		d.move(client)
	}
}

// Up forwards a pointer release to the lease holder.
func (d *Dispatcher) Up() {
	if d.up != nil {
		d.up()
	}
}

func (d *Dispatcher) detach() {
	d.move, d.up = nil, nil
	if d.OnRelease != nil {
		d.OnRelease()
	}
}
