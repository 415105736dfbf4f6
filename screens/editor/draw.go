package editor

import (
	"fmt"
	"log"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/geometry"
	"gradient-frame/pkg/raster"
	"gradient-frame/ui"
	"gradient-frame/widgets/toolbar"
)

// Draw renders the complete frame using SDL2
func (es *EditorScreen) Draw() error {
	w, h := es.window.GetSize()

	es.renderer.SetDrawColor(15, 23, 42, 255)
	es.renderer.Clear()

	seg := es.canvas.Segment()
	colors := es.store.Colors()

	if err := es.drawCanvas(seg, colors); err != nil {
		return err
	}
	es.drawSidebar(colors, w, h)

	if es.showShare && es.shareWidget != nil {
		if err := es.shareWidget.Render(es.renderer, w, h, es.fonts); err != nil {
			log.Printf("Error rendering share widget: %v", err)
		}
	}

	es.renderer.Present()
	return nil
}

// drawCanvas paints the gradient, the axis, the handles and the stops.
// Overlays are clipped to the canvas column; the axis itself is unbounded.
func (es *EditorScreen) drawCanvas(seg geometry.Segment, colors colorstop.Collection) error {
	rect := es.canvas.Rect()
	ui.DrawChecker(es.renderer, rect.X, rect.Y, rect.W, rect.H, 12)
	if es.gradient != nil {
		if err := es.gradient.Update(seg, colors); err != nil {
			log.Printf("Warning: Failed to render gradient: %v", err)
		}
		if err := es.gradient.Draw(es.renderer, rect.X, rect.Y); err != nil {
			return err
		}
	}

	_, windowHeight := es.window.GetSize()
	es.renderer.SetClipRect(&sdl.Rect{X: 0, Y: 0, W: es.sidebarX(), H: windowHeight})
	defer es.renderer.SetClipRect(nil)

	sx, sy := es.canvas.ToWindow(seg.Start)
	ex, ey := es.canvas.ToWindow(seg.End)
	es.renderer.SetDrawColor(255, 255, 255, 200)
	ui.DrawThickLine(es.renderer, sx, sy, ex, ey, 2)

	radius := int32(es.prefs.HandleRadius)
	for _, p := range [][2]int32{{sx, sy}, {ex, ey}} {
		es.renderer.SetDrawColor(255, 255, 255, 255)
		ui.FillCircle(es.renderer, p[0], p[1], radius)
		es.renderer.SetDrawColor(15, 23, 42, 255)
		ui.DrawCircle(es.renderer, p[0], p[1], radius)
	}

	activeID, dragging := es.controller.Target().StopID()
	var active *colorstop.Stop
	for _, s := range colors.Stops() {
		if dragging && s.ID == activeID {
			active = &s
			continue
		}
		es.drawStop(seg, s, radius)
	}
	// The dragged stop sits on top of the others.
	if active != nil {
		es.drawStop(seg, *active, activeStopRadius)
	}
	return nil
}

func (es *EditorScreen) drawStop(seg geometry.Segment, s colorstop.Stop, radius int32) {
	x, y := es.canvas.ToWindow(seg.At(s.Offset / 100))
	ui.SetColor(es.renderer, s.Color)
	ui.FillCircle(es.renderer, x, y, radius)
	es.renderer.SetDrawColor(255, 255, 255, 255)
	ui.DrawCircle(es.renderer, x, y, radius)
	if selected, ok := es.stopsWidget.Selected(); ok && selected == s.ID {
		ui.DrawCircle(es.renderer, x, y, radius+3)
	}
}

func (es *EditorScreen) drawSidebar(colors colorstop.Collection, windowWidth, windowHeight int32) {
	x := es.sidebarX()
	width := windowWidth - x
	toolbarY := windowHeight - toolbar.Height - statusHeight

	activeID, _ := es.controller.Target().StopID()
	if err := es.stopsWidget.Draw(es.renderer, colors, activeID, x, 0, width, toolbarY, es.fonts); err != nil {
		log.Printf("Error drawing stops panel: %v", err)
	}
	if err := es.toolbar.Draw(es.renderer, x, toolbarY, width, es.fonts.Medium); err != nil {
		log.Printf("Error drawing toolbar: %v", err)
	}

	es.renderer.SetDrawColor(30, 41, 59, 255)
	es.renderer.FillRect(&sdl.Rect{X: x, Y: toolbarY + toolbar.Height, W: width, H: statusHeight})
	text := es.status.get(time.Now())
	if es.controller.Target().IsHandle() {
		seg := es.canvas.Segment()
		text = fmt.Sprintf("Angle %.0f° | Length %.0fpx", raster.Angle(seg), seg.Length())
	}
	if text == "" {
		text = "A add | Del remove | Left/Right nudge | [ ] color | C copy CSS | R reset"
	}
	ui.RenderText(es.renderer, text, x+12, toolbarY+toolbar.Height+6, ui.Gray, es.fonts.Small)
}
