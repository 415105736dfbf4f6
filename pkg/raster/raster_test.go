package raster

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/geometry"
)

func redToBlue() colorstop.Collection {
	return colorstop.NewCollection(
		colorstop.Stop{ID: "r", Color: colorstop.RGB(255, 0, 0), Offset: 0},
		colorstop.Stop{ID: "b", Color: colorstop.RGB(0, 0, 255), Offset: 100},
	)
}

func TestRenderHorizontal(t *testing.T) {
	seg := geometry.Seg(geometry.Pt(0, 0), geometry.Pt(100, 0))
	img, err := Render(seg, redToBlue(), 100, 10)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 10 {
		t.Fatalf("bounds = %v, want 100x10", b)
	}

	left := img.RGBAAt(1, 5)
	if left.R < 200 || left.B > 60 || left.A != 255 {
		t.Errorf("left pixel = %v, want mostly red and opaque", left)
	}
	right := img.RGBAAt(98, 5)
	if right.B < 200 || right.R > 60 || right.A != 255 {
		t.Errorf("right pixel = %v, want mostly blue and opaque", right)
	}
	// Pixels on the same column share a colour: the gradient runs along x.
	if a, b := img.RGBAAt(50, 1), img.RGBAAt(50, 8); a != b {
		t.Errorf("column 50 not uniform: %v vs %v", a, b)
	}
}

func TestRenderNRGBAUnpremultipliesAlpha(t *testing.T) {
	halfRed := colorstop.RGBA{R: 255, A: 0.5}
	stops := colorstop.NewCollection(
		colorstop.Stop{ID: "a", Color: halfRed, Offset: 0},
		colorstop.Stop{ID: "b", Color: halfRed, Offset: 100},
	)
	seg := geometry.Seg(geometry.Pt(0, 0), geometry.Pt(20, 0))

	straight, err := RenderNRGBA(seg, stops, 20, 4)
	if err != nil {
		t.Fatal(err)
	}
	premul, err := Render(seg, stops, 20, 4)
	if err != nil {
		t.Fatal(err)
	}

	got := straight.NRGBAAt(10, 2)
	if got.R < 250 || got.G != 0 || got.B != 0 || got.A < 120 || got.A > 135 {
		t.Errorf("straight pixel = %v, want full red at half alpha", got)
	}
	// The same pixel in the premultiplied image is darkened by its alpha.
	if p := premul.RGBAAt(10, 2); p.A != got.A || p.R > 135 {
		t.Errorf("premultiplied pixel = %v, want red scaled by alpha %d", p, got.A)
	}
}

func TestRenderEmptyIsTransparent(t *testing.T) {
	img, err := Render(geometry.Seg(geometry.Pt(0, 0), geometry.Pt(10, 10)), colorstop.Collection{}, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(2, 2); c.A != 0 {
		t.Errorf("pixel = %v, want transparent", c)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := Render(geometry.Segment{}, redToBlue(), size[0], size[1]); err == nil {
			t.Errorf("Render(%dx%d) returned no error", size[0], size[1])
		}
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	seg := geometry.Seg(geometry.Pt(0, 0), geometry.Pt(64, 32))
	if err := EncodePNG(&buf, seg, redToBlue(), 64, 32); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Errorf("decoded %dx%d, want 64x32", cfg.Width, cfg.Height)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		end  geometry.Point
		want float64
	}{
		{"up", geometry.Pt(0, -10), 0},
		{"right", geometry.Pt(10, 0), 90},
		{"diagonal", geometry.Pt(600, 600), 135},
		{"down", geometry.Pt(0, 10), 180},
		{"left", geometry.Pt(-10, 0), 270},
		{"degenerate", geometry.Pt(0, 0), 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle(geometry.Seg(geometry.Pt(0, 0), tt.end)); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Angle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCSS(t *testing.T) {
	seg := geometry.Seg(geometry.Pt(0, 0), geometry.Pt(600, 600))
	got := CSS(seg, colorstop.NewCollection(colorstop.DefaultStops()...))
	want := "linear-gradient(135deg, rgba(24, 0, 239, 1) 0%, rgba(74, 82, 188, 1) 50%, rgba(150, 150, 252, 1) 100%)"
	if got != want {
		t.Errorf("CSS =\n%s\nwant\n%s", got, want)
	}
}

func TestScale(t *testing.T) {
	got := Scale(geometry.Seg(geometry.Pt(1, 2), geometry.Pt(3, 4)), 2)
	if want := geometry.Seg(geometry.Pt(2, 4), geometry.Pt(6, 8)); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
}
