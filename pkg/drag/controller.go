// Package drag implements the pointer state machine of the gradient editor:
// which of the start handle, end handle or a colour stop the pointer is
// currently moving, and what each move does to the axis or the stops.
package drag

import (
	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/geometry"
	"gradient-frame/pkg/logging"
)

// Host owns the canonical axis endpoints and the container the editor is
// drawn in. The controller reads from it and proposes new endpoints.
type Host interface {
	// Origin returns the container's top-left corner in client
	// coordinates. ok is false while the container has no geometry.
	Origin() (origin geometry.Point, ok bool)
	Segment() geometry.Segment
	SetStart(geometry.Point)
	SetEnd(geometry.Point)
}

// OffsetWriter is the part of the colour stop store a drag writes to.
type OffsetWriter interface {
	UpdateOffset(id colorstop.ID, offset float64) colorstop.Collection
}

// Controller is the drag state machine. It is not safe for concurrent use;
// all calls come from the UI thread.
type Controller struct {
	host      Host
	stops     OffsetWriter
	listeners Listeners

	target     Target
	dragOffset geometry.Point
	axis       geometry.Segment // captured when a stop drag starts
	release    func()

	// OnChange, when set, is called after every target transition.
	OnChange func(from, to Target)
}

// NewController wires a controller to its collaborators. All three are
// required.
func NewController(host Host, stops OffsetWriter, listeners Listeners) *Controller {
	return &Controller{
		host:      host,
		stops:     stops,
		listeners: listeners,
	}
}

// Target returns the active drag target; None when idle.
func (c *Controller) Target() Target {
	return c.target
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool {
	return !c.target.IsNone()
}

// PointerDown starts a drag of t at the given client position. It reports
// whether a transition happened. Events are dropped when the container has
// no origin, and pressing the stop that is already being dragged is
// ignored.
func (c *Controller) PointerDown(t Target, client geometry.Point) bool {
	if t.IsNone() {
		return false
	}
	if id, ok := t.StopID(); ok {
		if active, dragging := c.target.StopID(); dragging && active == id {
			return false
		}
	}

	origin, ok := c.host.Origin()
	if !ok {
		logging.Logger().Debug("pointer down dropped: no container origin", "target", t)
		return false
	}
	local := client.Sub(origin)
	seg := c.host.Segment()

	c.releaseListeners()

	var offset geometry.Point
	switch t.Kind() {
	case KindStartHandle:
		offset = local.Sub(seg.Start)
	case KindEndHandle:
		offset = local.Sub(seg.End)
	case KindStop:
		// Stops follow the pointer's projection, not the grab point, so
		// no offset is kept. The axis is frozen for the whole gesture.
		c.axis = seg
	}

	c.dragOffset = offset
	c.transition(t)
	c.release = c.listeners.Listen(c.PointerMove, c.PointerUp)
	return true
}

// PointerMove applies a pointer move at the given client position to the
// active target. It does nothing while idle or without a container origin.
func (c *Controller) PointerMove(client geometry.Point) {
	if c.target.IsNone() {
		return
	}
	origin, ok := c.host.Origin()
	if !ok {
		return
	}
	local := client.Sub(origin)

	switch c.target.Kind() {
	case KindStartHandle:
		c.host.SetStart(local.Sub(c.dragOffset))
	case KindEndHandle:
		c.host.SetEnd(local.Sub(c.dragOffset))
	case KindStop:
		id, _ := c.target.StopID()
		c.stops.UpdateOffset(id, geometry.ProjectOffset(c.axis, local))
	}
}

// PointerUp ends the gesture, wherever the pointer is.
func (c *Controller) PointerUp() {
	c.releaseListeners()
	if c.target.IsNone() {
		return
	}
	c.dragOffset = geometry.Point{}
	c.axis = geometry.Segment{}
	c.transition(None())
}

// Close ends any gesture and releases its listeners. The host calls it when
// the editor is torn down.
func (c *Controller) Close() {
	c.PointerUp()
}

// Hittable reports whether t may currently receive a pointer down. While a
// stop is being dragged every other stop is masked so the gesture cannot
// jump to a neighbour it passes over; handles and the active stop stay live.
func (c *Controller) Hittable(t Target) bool {
	active, draggingStop := c.target.StopID()
	if !draggingStop {
		return true
	}
	id, isStop := t.StopID()
	return !isStop || id == active
}

func (c *Controller) releaseListeners() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

func (c *Controller) transition(to Target) {
	from := c.target
	c.target = to
	logging.Logger().Debug("drag target changed", "from", from, "to", to)
	if c.OnChange != nil {
		c.OnChange(from, to)
	}
}
