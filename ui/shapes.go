package ui

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/colorstop"
)

// SetColor sets the draw colour from a stop colour.
func SetColor(renderer *sdl.Renderer, c colorstop.RGBA) {
	renderer.SetDrawColor(c.R, c.G, c.B, uint8(math.Round(math.Max(0, math.Min(1, c.A))*255)))
}

// FillCircle draws a filled circle with horizontal scanlines.
func FillCircle(renderer *sdl.Renderer, cx, cy, radius int32) {
	for dy := -radius; dy <= radius; dy++ {
		dx := int32(math.Sqrt(float64(radius*radius - dy*dy)))
		renderer.DrawLine(cx-dx, cy+dy, cx+dx, cy+dy)
	}
}

// DrawCircle draws a circle outline using the midpoint algorithm.
func DrawCircle(renderer *sdl.Renderer, cx, cy, radius int32) {
	x, y := radius, int32(0)
	d := 1 - x
	for x >= y {
		points := []sdl.Point{
			{X: cx + x, Y: cy + y}, {X: cx + y, Y: cy + x},
			{X: cx - y, Y: cy + x}, {X: cx - x, Y: cy + y},
			{X: cx - x, Y: cy - y}, {X: cx - y, Y: cy - x},
			{X: cx + y, Y: cy - x}, {X: cx + x, Y: cy - y},
		}
		renderer.DrawPoints(points)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// DrawThickLine draws a line widened by drawing offset copies.
func DrawThickLine(renderer *sdl.Renderer, x1, y1, x2, y2 int32, width int32) {
	half := width / 2
	dx, dy := float64(x2-x1), float64(y2-y1)
	steep := math.Abs(dy) > math.Abs(dx)
	for o := -half; o <= half; o++ {
		if steep {
			renderer.DrawLine(x1+o, y1, x2+o, y2)
		} else {
			renderer.DrawLine(x1, y1+o, x2, y2+o)
		}
	}
}
