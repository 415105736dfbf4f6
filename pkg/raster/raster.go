// Package raster paints a gradient axis and its colour stops into pixels and
// text. The editor canvas, the PNG export and the share server all draw
// through it so they agree on what the gradient looks like.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"
	"strings"

	"github.com/gogpu/gg"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/geometry"
)

// Brush converts the axis and stops into a gg linear gradient brush.
// Offsets are mapped from percent to [0,1].
func Brush(seg geometry.Segment, stops colorstop.Collection) *gg.LinearGradientBrush {
	brush := gg.NewLinearGradientBrush(seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
	for _, s := range stops.Stops() {
		brush.AddColorStop(s.Offset/100, toGG(s.Color))
	}
	return brush
}

// Render fills a width x height image with the gradient. An empty
// collection yields a transparent image.
func Render(seg geometry.Segment, stops colorstop.Collection, width, height int) (*image.RGBA, error) {
	dc, err := paint(seg, stops, width, height)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected image type %T", dc.Image())
	}
	return img, nil
}

// RenderNRGBA is Render with straight (non-premultiplied) alpha, the layout
// SDL expects for RGBA32 textures drawn with alpha blending.
func RenderNRGBA(seg geometry.Segment, stops colorstop.Collection, width, height int) (*image.NRGBA, error) {
	img, err := Render(seg, stops, width, height)
	if err != nil {
		return nil, err
	}
	out := image.NewNRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out, nil
}

// EncodePNG renders the gradient and writes it as PNG to w.
func EncodePNG(w io.Writer, seg geometry.Segment, stops colorstop.Collection, width, height int) error {
	dc, err := paint(seg, stops, width, height)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

func paint(seg geometry.Segment, stops colorstop.Collection, width, height int) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	if stops.Len() == 0 {
		return dc, nil
	}
	dc.SetFillBrush(Brush(seg, stops))
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("failed to fill gradient: %w", err)
	}
	return dc, nil
}

// Scale returns seg with both endpoints multiplied by factor, for exports
// larger than the on-screen canvas.
func Scale(seg geometry.Segment, factor float64) geometry.Segment {
	return geometry.Segment{
		Start: geometry.Pt(seg.Start.X*factor, seg.Start.Y*factor),
		End:   geometry.Pt(seg.End.X*factor, seg.End.Y*factor),
	}
}

// Angle returns the CSS gradient angle of seg in degrees: 0 points up,
// 90 points right. A degenerate axis reports 180, the CSS default.
func Angle(seg geometry.Segment) float64 {
	if seg.IsDegenerate() {
		return 180
	}
	v := seg.Vector()
	deg := math.Atan2(v.X, -v.Y) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// CSS formats the gradient as a CSS linear-gradient() value.
func CSS(seg geometry.Segment, stops colorstop.Collection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "linear-gradient(%gdeg", math.Round(Angle(seg)*100)/100)
	for _, s := range stops.Stops() {
		fmt.Fprintf(&b, ", %s %g%%", s.Color.CSS(), math.Round(s.Offset*100)/100)
	}
	b.WriteString(")")
	return b.String()
}

func toGG(c colorstop.RGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: geometry.Clamp(c.A, 0, 1),
	}
}
