package toolbar

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"gradient-frame/ui"
)

// Widget draws the action buttons along the bottom of the sidebar.
type Widget struct {
	rects   []sdl.Rect
	hover   ButtonID
	hovered bool
	active  map[ButtonID]bool
}

func NewWidget() *Widget {
	return &Widget{active: make(map[ButtonID]bool)}
}

// SetActive highlights a toggle button such as Share while it is on.
func (w *Widget) SetActive(b ButtonID, on bool) {
	w.active[b] = on
}

// Hover records the pointer position for highlighting.
func (w *Widget) Hover(x, y int32) {
	w.hover, w.hovered = w.HitTest(x, y)
}

// HitTest returns the button under (x, y) as of the last Draw.
func (w *Widget) HitTest(x, y int32) (ButtonID, bool) {
	p := sdl.Point{X: x, Y: y}
	for i := range w.rects {
		if p.InRect(&w.rects[i]) {
			return ButtonID(i), true
		}
	}
	return 0, false
}

// Draw renders the buttons in a row starting at (x, y).
func (w *Widget) Draw(renderer *sdl.Renderer, x, y, width int32, font *ttf.Font) error {
	const gap = int32(8)
	n := int32(len(buttonNames))
	buttonWidth := (width - gap*(n+1)) / n
	buttonHeight := Height - 2*gap

	w.rects = w.rects[:0]
	renderer.SetDrawColor(30, 41, 59, 255)
	renderer.FillRect(&sdl.Rect{X: x, Y: y, W: width, H: Height})

	for i, name := range buttonNames {
		id := ButtonID(i)
		rect := sdl.Rect{X: x + gap + int32(i)*(buttonWidth+gap), Y: y + gap, W: buttonWidth, H: buttonHeight}
		w.rects = append(w.rects, rect)

		switch {
		case w.active[id]:
			renderer.SetDrawColor(59, 130, 246, 255)
		case w.hovered && w.hover == id:
			renderer.SetDrawColor(71, 85, 105, 255)
		default:
			renderer.SetDrawColor(51, 65, 85, 255)
		}
		renderer.FillRect(&rect)

		if font != nil {
			color := ui.Gray
			if w.active[id] || (w.hovered && w.hover == id) {
				color = ui.White
			}
			textX := rect.X + (rect.W-ui.TextWidth(name, font))/2
			if err := ui.RenderText(renderer, name, textX, rect.Y+(rect.H-18)/2, color, font); err != nil {
				continue
			}
		}
	}

	return nil
}
