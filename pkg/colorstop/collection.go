package colorstop

import (
	"slices"
	"sort"
)

// Collection is an immutable set of stops. Storage order is whatever the last
// write left behind; Stops always returns render order, ascending by offset
// with ties kept in storage order.
//
// Every method that changes content returns a new Collection and leaves the
// receiver untouched, so a reader holding a Collection never sees a partial
// update.
type Collection struct {
	stops []Stop
}

// NewCollection builds a collection from stops. Offsets are clamped, stops
// without an id and repeated ids are dropped (first one wins).
func NewCollection(stops ...Stop) Collection {
	out := make([]Stop, 0, len(stops))
	seen := make(map[ID]bool, len(stops))
	for _, s := range stops {
		if s.ID == "" || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		s.Offset = ClampOffset(s.Offset)
		out = append(out, s)
	}
	return Collection{stops: out}
}

// Len returns the number of stops.
func (c Collection) Len() int {
	return len(c.stops)
}

// Stops returns a copy of the stops in render order. The sort is recomputed
// on every call.
func (c Collection) Stops() []Stop {
	out := slices.Clone(c.stops)
	sortByOffset(out)
	return out
}

// Find returns the stop with the given id.
func (c Collection) Find(id ID) (Stop, bool) {
	i := c.index(id)
	if i < 0 {
		return Stop{}, false
	}
	return c.stops[i], true
}

// Contains reports whether a stop with the given id exists.
func (c Collection) Contains(id ID) bool {
	return c.index(id) >= 0
}

// Equal reports whether c and o hold the same stops in the same render order.
func (c Collection) Equal(o Collection) bool {
	return slices.Equal(c.Stops(), o.Stops())
}

// Add inserts a stop whose position and colour derive from the current stops:
//
//   - no stops: offset 0, colour c
//   - one stop: offset 0, colour copied from that stop (color is ignored)
//   - otherwise: midway between the two stops with the greatest offsets,
//     colour averaged between them
//
// offsetHint does not affect placement; it is accepted so callers can pass
// the position the user pointed at. The result is re-sorted by offset.
func (c Collection) Add(color RGBA, offsetHint float64, newID IDFunc) (Collection, Stop) {
	sorted := c.Stops()
	var stop Stop
	switch len(sorted) {
	case 0:
		stop = Stop{Color: color, Offset: 0}
	case 1:
		stop = Stop{Color: sorted[0].Color, Offset: 0}
	default:
		a, b := sorted[len(sorted)-2], sorted[len(sorted)-1]
		stop = Stop{
			Color:  a.Color.Mix(b.Color),
			Offset: (a.Offset + b.Offset) / 2,
		}
	}
	stop.Offset = ClampOffset(stop.Offset)
	stop.ID = c.freshID(newID)

	out := make([]Stop, 0, len(c.stops)+1)
	out = append(out, c.stops...)
	out = append(out, stop)
	sortByOffset(out)
	return Collection{stops: out}, stop
}

// UpdateColor replaces the colour of the stop with the given id. An unknown
// id yields an equal collection.
func (c Collection) UpdateColor(id ID, color RGBA) Collection {
	return c.replace(id, func(s *Stop) { s.Color = color })
}

// UpdateOffset clamps offset to [0,100] and stores it on the stop with the
// given id. An unknown id yields an equal collection.
func (c Collection) UpdateOffset(id ID, offset float64) Collection {
	offset = ClampOffset(offset)
	return c.replace(id, func(s *Stop) { s.Offset = offset })
}

// Remove drops the stop with the given id. An unknown id yields an equal
// collection.
func (c Collection) Remove(id ID) Collection {
	out := make([]Stop, 0, len(c.stops))
	for _, s := range c.stops {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return Collection{stops: out}
}

func (c Collection) replace(id ID, fn func(*Stop)) Collection {
	out := slices.Clone(c.stops)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
		}
	}
	return Collection{stops: out}
}

func (c Collection) index(id ID) int {
	return slices.IndexFunc(c.stops, func(s Stop) bool { return s.ID == id })
}

// freshID draws ids until one is unused. Random UUIDs practically never
// collide; the loop protects injected generators in tests.
func (c Collection) freshID(newID IDFunc) ID {
	if newID == nil {
		newID = NewID
	}
	for {
		id := newID()
		if id != "" && !c.Contains(id) {
			return id
		}
	}
}

func sortByOffset(stops []Stop) {
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Offset < stops[j].Offset
	})
}
