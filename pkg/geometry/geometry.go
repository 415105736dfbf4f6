// Package geometry holds the 2D primitives of the gradient axis and the
// projection used to turn a pointer position into a stop offset.
package geometry

import "math"

// Point is a coordinate in the host's local space. No bounds apply.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// DistanceSq returns the squared distance between p and q.
func (p Point) DistanceSq(q Point) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// Segment is the gradient axis. Start and End may coincide.
type Segment struct {
	Start, End Point
}

// Seg is shorthand for Segment{Start: start, End: end}.
func Seg(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// Vector returns End-Start.
func (s Segment) Vector() Point {
	return s.End.Sub(s.Start)
}

// LengthSq returns the squared length of the segment.
func (s Segment) LengthSq() float64 {
	v := s.Vector()
	return v.Dot(v)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return math.Sqrt(s.LengthSq())
}

// IsDegenerate reports whether Start and End coincide.
func (s Segment) IsDegenerate() bool {
	return s.LengthSq() == 0
}

// At returns the point at parameter t along the segment. t is not clamped.
func (s Segment) At(t float64) Point {
	v := s.Vector()
	return Point{X: s.Start.X + v.X*t, Y: s.Start.Y + v.Y*t}
}

// Project returns the clamped parameter t in [0,1] of p's orthogonal
// projection onto s. A zero-length segment divides by 1 instead of its
// squared length so the result stays finite.
func Project(s Segment, p Point) float64 {
	denom := s.LengthSq()
	if denom == 0 {
		denom = 1
	}
	t := p.Sub(s.Start).Dot(s.Vector()) / denom
	return Clamp(t, 0, 1)
}

// ProjectOffset is Project scaled to a percentage in [0,100].
func ProjectOffset(s Segment, p Point) float64 {
	return Project(s, p) * 100
}

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
