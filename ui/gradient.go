package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/geometry"
	"gradient-frame/pkg/raster"
)

// GradientTexture holds the rasterised gradient as a streaming texture and
// only repaints it when the axis or the stops change.
type GradientTexture struct {
	texture *sdl.Texture
	width   int32
	height  int32

	seg   geometry.Segment
	stops colorstop.Collection
	valid bool
}

func NewGradientTexture(renderer *sdl.Renderer, width, height int32) (*GradientTexture, error) {
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32), sdl.TEXTUREACCESS_STREAMING, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create gradient texture: %v", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return &GradientTexture{texture: texture, width: width, height: height}, nil
}

// Update repaints the texture when seg or stops differ from the last call.
func (g *GradientTexture) Update(seg geometry.Segment, stops colorstop.Collection) error {
	if g.valid && g.seg == seg && g.stops.Equal(stops) {
		return nil
	}

	img, err := raster.RenderNRGBA(seg, stops, int(g.width), int(g.height))
	if err != nil {
		return err
	}

	pixels, pitch, err := g.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("failed to lock texture: %v", err)
	}
	rowBytes := int(g.width) * 4
	for y := 0; y < int(g.height); y++ {
		copy(pixels[y*pitch:y*pitch+rowBytes], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	g.texture.Unlock()

	g.seg, g.stops, g.valid = seg, stops, true
	return nil
}

// Draw copies the texture to the renderer at (x, y).
func (g *GradientTexture) Draw(renderer *sdl.Renderer, x, y int32) error {
	return renderer.Copy(g.texture, nil, &sdl.Rect{X: x, Y: y, W: g.width, H: g.height})
}

// DrawChecker fills a rectangle with a checkerboard so transparent stops
// remain visible.
func DrawChecker(renderer *sdl.Renderer, x, y, width, height, cell int32) {
	for cy := int32(0); cy < height; cy += cell {
		for cx := int32(0); cx < width; cx += cell {
			if (cx/cell+cy/cell)%2 == 0 {
				renderer.SetDrawColor(204, 204, 204, 255)
			} else {
				renderer.SetDrawColor(255, 255, 255, 255)
			}
			w, h := cell, cell
			if cx+w > width {
				w = width - cx
			}
			if cy+h > height {
				h = height - cy
			}
			renderer.FillRect(&sdl.Rect{X: x + cx, Y: y + cy, W: w, H: h})
		}
	}
}

func (g *GradientTexture) Destroy() {
	if g.texture != nil {
		g.texture.Destroy()
		g.texture = nil
	}
}
