package colorstop

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// Offsets are percentages along the gradient axis.
const (
	MinOffset = 0.0
	MaxOffset = 100.0
)

// ID identifies a stop for its whole lifetime.
type ID string

// IDFunc produces fresh stop ids.
type IDFunc func() ID

// NewID returns a random UUID based id.
func NewID() ID {
	return ID(uuid.NewString())
}

// RGBA is a stop colour: 8-bit channels plus a float alpha in [0,1].
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex returns the #rrggbb form of the colour, alpha dropped.
func (c RGBA) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// CSS returns the colour as an rgba() expression.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// Mix returns the component-wise average of c and o. Colour channels are
// rounded to the nearest integer, alpha is not.
func (c RGBA) Mix(o RGBA) RGBA {
	avg := func(a, b uint8) uint8 {
		return uint8(math.Round((float64(a) + float64(b)) / 2))
	}
	return RGBA{
		R: avg(c.R, o.R),
		G: avg(c.G, o.G),
		B: avg(c.B, o.B),
		A: (c.A + o.A) / 2,
	}
}

// Stop binds an offset along the axis to a colour.
type Stop struct {
	ID     ID
	Color  RGBA
	Offset float64
}

func (s Stop) String() string {
	return fmt.Sprintf("%s %s @ %g%%", s.ID, s.Color.CSS(), s.Offset)
}

// ClampOffset limits an offset to [MinOffset, MaxOffset]. NaN becomes
// MinOffset.
func ClampOffset(v float64) float64 {
	if math.IsNaN(v) || v < MinOffset {
		return MinOffset
	}
	if v > MaxOffset {
		return MaxOffset
	}
	return v
}

// DefaultStops is the three-stop gradient a new editor starts with.
func DefaultStops() []Stop {
	return []Stop{
		{ID: "1", Color: RGBA{R: 24, G: 0, B: 239, A: 1}, Offset: 0},
		{ID: "2", Color: RGBA{R: 74, G: 82, B: 188, A: 1}, Offset: 50},
		{ID: "3", Color: RGBA{R: 150, G: 150, B: 252, A: 1}, Offset: 100},
	}
}
