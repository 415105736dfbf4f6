package stops

import (
	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/ui"
)

// Widget lists the colour stops in render order and tracks the selected one.
type Widget struct {
	selected colorstop.ID
	rows     []row
}

func NewWidget() *Widget {
	return &Widget{}
}

// Selected returns the selected stop id, if any.
func (w *Widget) Selected() (colorstop.ID, bool) {
	return w.selected, w.selected != ""
}

func (w *Widget) Select(id colorstop.ID) {
	w.selected = id
}

// Sync keeps the selection pointing at a stop that still exists, falling
// back to the first stop in render order.
func (w *Widget) Sync(c colorstop.Collection) {
	if w.selected != "" && c.Contains(w.selected) {
		return
	}
	w.selected = ""
	if stops := c.Stops(); len(stops) > 0 {
		w.selected = stops[0].ID
	}
}

// MoveSelection moves selection up or down with wrapping
func (w *Widget) MoveSelection(c colorstop.Collection, delta int) {
	stops := c.Stops()
	if len(stops) == 0 {
		return
	}

	idx := 0
	for i, s := range stops {
		if s.ID == w.selected {
			idx = i + delta
			break
		}
	}
	if idx < 0 {
		idx = len(stops) - 1
	} else if idx >= len(stops) {
		idx = 0
	}
	w.selected = stops[idx].ID
}

// HitTest maps a window position to the row under it. Rows come from the
// most recent Draw.
func (w *Widget) HitTest(x, y int32) (colorstop.ID, Action) {
	p := sdl.Point{X: x, Y: y}
	for _, r := range w.rows {
		if p.InRect(&r.remove) {
			return r.id, ActionRemove
		}
		if p.InRect(&r.bounds) {
			return r.id, ActionSelect
		}
	}
	return "", ActionNone
}

// Draw renders the panel. active is the stop currently being dragged, or "".
func (w *Widget) Draw(renderer *sdl.Renderer, c colorstop.Collection, active colorstop.ID, x, y, width, height int32, fonts *ui.Fonts) error {
	renderer.SetDrawColor(15, 23, 42, 255)
	renderer.FillRect(&sdl.Rect{X: x, Y: y, W: width, H: height})

	ui.RenderText(renderer, "Color Stops", x+20, y+16, ui.White, fonts.Large)

	w.rows = w.rows[:0]
	rowY := y + headerSize
	for _, s := range c.Stops() {
		// Skip rows that would be below the visible area
		if rowY+rowHeight > y+height {
			break
		}
		r := row{
			id:     s.ID,
			bounds: sdl.Rect{X: x + 12, Y: rowY, W: width - 24, H: rowHeight},
		}
		r.remove = sdl.Rect{X: r.bounds.X + r.bounds.W - 34, Y: rowY + 8, W: 24, H: 24}
		w.rows = append(w.rows, r)

		DrawRow(renderer, r, s, s.ID == w.selected, s.ID == active, fonts)
		rowY += rowHeight + rowSpacing
	}

	if c.Len() == 0 {
		ui.RenderText(renderer, "No stops. Press A to add a color.", x+20, rowY, ui.Gray, fonts.Small)
	}
	return nil
}
