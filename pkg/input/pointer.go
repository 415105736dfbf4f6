package input

import "gradient-frame/pkg/geometry"

type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return "unknown"
}

// Event is a pointer event in window coordinates.
type Event struct {
	Kind EventKind
	Pos  geometry.Point
}

// PointerTracker turns polled mouse state into discrete pointer events.
// SDL reports the buttons and position every frame; the tracker emits an
// event only when one of them changes.
type PointerTracker struct {
	button  uint32
	presses MousePressTracker
	pos     geometry.Point
	pressed bool
	seen    bool
}

// NewPointerTracker creates a tracker following the button selected by
// buttonMask (e.g. sdl.ButtonLMask()).
func NewPointerTracker(buttonMask uint32) PointerTracker {
	return PointerTracker{
		button:  buttonMask,
		presses: NewMousePressTracker(),
	}
}

// Sample feeds the current position and SDL button state. Events come back
// in the order a browser would deliver them: a release that also moved
// yields the move before the up.
func (pt *PointerTracker) Sample(pos geometry.Point, mouseState uint32) []Event {
	moved := pt.seen && pos != pt.pos
	down := pt.presses.IsPressed(mouseState, pt.button)
	pressed := mouseState&pt.button != 0
	up := pt.pressed && !pressed
	pt.pos, pt.pressed, pt.seen = pos, pressed, true

	var events []Event
	if moved {
		events = append(events, Event{Kind: PointerMove, Pos: pos})
	}
	switch {
	case down:
		events = append(events, Event{Kind: PointerDown, Pos: pos})
	case up:
		events = append(events, Event{Kind: PointerUp, Pos: pos})
	}
	return events
}
