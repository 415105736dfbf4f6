package colorstop

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex reads a #rrggbb colour. The result is opaque.
func ParseHex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

func mustParseHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette is the set of colours the editor cycles through.
var Palette = []RGBA{
	mustParseHex("#1800ef"),
	mustParseHex("#4a52bc"),
	mustParseHex("#9696fc"),
	mustParseHex("#ff5e62"),
	mustParseHex("#ff9966"),
	mustParseHex("#ffe066"),
	mustParseHex("#66cc99"),
	mustParseHex("#00a8e8"),
	mustParseHex("#ffffff"),
	mustParseHex("#000000"),
}

// Cycle returns the palette colour dir steps away from c, wrapping at both
// ends. Alpha is carried over from c. A colour outside the palette starts
// from the first entry going forward and the last going backward.
func Cycle(c RGBA, dir int) RGBA {
	n := len(Palette)
	i := -1
	for j, p := range Palette {
		if p.R == c.R && p.G == c.G && p.B == c.B {
			i = j
			break
		}
	}

	var next int
	switch {
	case i < 0 && dir >= 0:
		next = 0
	case i < 0:
		next = n - 1
	default:
		next = ((i+dir)%n + n) % n
	}

	out := Palette[next]
	out.A = c.A
	return out
}
