package drag

import (
	"fmt"

	"gradient-frame/pkg/colorstop"
)

// Kind tags a Target.
type Kind int

const (
	KindNone Kind = iota
	KindStartHandle
	KindEndHandle
	KindStop
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindStartHandle:
		return "start"
	case KindEndHandle:
		return "end"
	case KindStop:
		return "stop"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Target names the entity receiving pointer moves: nothing, one of the two
// axis handles, or a specific colour stop. The zero value is None.
type Target struct {
	kind Kind
	stop colorstop.ID
}

// None is the idle target.
func None() Target { return Target{} }

// StartHandle targets the axis start point.
func StartHandle() Target { return Target{kind: KindStartHandle} }

// EndHandle targets the axis end point.
func EndHandle() Target { return Target{kind: KindEndHandle} }

// Stop targets the colour stop with the given id.
func Stop(id colorstop.ID) Target { return Target{kind: KindStop, stop: id} }

// Kind returns the tag.
func (t Target) Kind() Kind { return t.kind }

// IsNone reports whether t is the idle target.
func (t Target) IsNone() bool { return t.kind == KindNone }

// IsHandle reports whether t is either axis handle.
func (t Target) IsHandle() bool {
	return t.kind == KindStartHandle || t.kind == KindEndHandle
}

// StopID returns the stop id when t targets a stop.
func (t Target) StopID() (colorstop.ID, bool) {
	if t.kind != KindStop {
		return "", false
	}
	return t.stop, true
}

func (t Target) String() string {
	if t.kind == KindStop {
		return fmt.Sprintf("stop(%s)", t.stop)
	}
	return t.kind.String()
}
