package stops

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/ui"
)

// DrawRow renders a single stop: swatch, hex, offset and a remove button.
func DrawRow(renderer *sdl.Renderer, r row, stop colorstop.Stop, selected, active bool, fonts *ui.Fonts) {
	b := r.bounds
	switch {
	case selected:
		renderer.SetDrawColor(59, 130, 246, 255)
	case active:
		renderer.SetDrawColor(51, 65, 85, 255)
	default:
		renderer.SetDrawColor(30, 41, 59, 255)
	}
	renderer.FillRect(&b)

	swatch := sdl.Rect{X: b.X + 8, Y: b.Y + (b.H-swatchSize)/2, W: swatchSize, H: swatchSize}
	ui.DrawChecker(renderer, swatch.X, swatch.Y, swatch.W, swatch.H, 6)
	ui.SetColor(renderer, stop.Color)
	renderer.FillRect(&swatch)
	renderer.SetDrawColor(255, 255, 255, 255)
	renderer.DrawRect(&swatch)

	textY := b.Y + (b.H-18)/2
	ui.RenderText(renderer, stop.Color.Hex(), swatch.X+swatch.W+12, textY, ui.White, fonts.Medium)
	ui.RenderText(renderer, fmt.Sprintf("%.0f%%", stop.Offset), b.X+b.W-110, textY, ui.Gray, fonts.Medium)

	renderer.SetDrawColor(148, 163, 184, 255)
	rm := r.remove
	renderer.DrawRect(&rm)
	renderer.DrawLine(rm.X+6, rm.Y+6, rm.X+rm.W-7, rm.Y+rm.H-7)
	renderer.DrawLine(rm.X+rm.W-7, rm.Y+6, rm.X+6, rm.Y+rm.H-7)
}
