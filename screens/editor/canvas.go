package editor

import (
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/geometry"
)

// canvasHost owns the axis endpoints and the canvas position in the window.
// It implements drag.Host. The share server reads the segment from HTTP
// goroutines, hence the lock.
type canvasHost struct {
	mu     sync.RWMutex
	window *sdl.Window
	origin geometry.Point
	width  int32
	height int32
	seg    geometry.Segment
}

func newCanvasHost(window *sdl.Window, width, height int32) *canvasHost {
	return &canvasHost{
		window: window,
		origin: geometry.Pt(float64(Margin), float64(Margin)),
		width:  width,
		height: height,
		seg:    defaultSegment(width, height),
	}
}

// defaultSegment runs corner to corner across the canvas.
func defaultSegment(width, height int32) geometry.Segment {
	return geometry.Seg(geometry.Pt(0, 0), geometry.Pt(float64(width), float64(height)))
}

// Reset moves both handles back to their initial corners.
func (c *canvasHost) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seg = defaultSegment(c.width, c.height)
}

// Origin returns the canvas corner in window coordinates. A minimised
// window has no usable geometry.
func (c *canvasHost) Origin() (geometry.Point, bool) {
	if c.window != nil && c.window.GetFlags()&sdl.WINDOW_MINIMIZED != 0 {
		return geometry.Point{}, false
	}
	return c.origin, true
}

func (c *canvasHost) Segment() geometry.Segment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seg
}

func (c *canvasHost) SetStart(p geometry.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seg.Start = p
}

func (c *canvasHost) SetEnd(p geometry.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seg.End = p
}

// Rect returns the canvas rectangle in window coordinates.
func (c *canvasHost) Rect() sdl.Rect {
	return sdl.Rect{X: int32(c.origin.X), Y: int32(c.origin.Y), W: c.width, H: c.height}
}

// ToWindow converts a canvas-local point into window coordinates.
func (c *canvasHost) ToWindow(p geometry.Point) (int32, int32) {
	w := p.Add(c.origin)
	return int32(w.X), int32(w.Y)
}
