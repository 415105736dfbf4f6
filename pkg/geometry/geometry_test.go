package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestProjectHorizontal(t *testing.T) {
	seg := Seg(Pt(10, 10), Pt(110, 10))
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"midpoint", Pt(60, 10), 50},
		{"past end", Pt(1000, 10), 100},
		{"before start", Pt(-100, 10), 0},
		{"off axis", Pt(35, -400), 25},
		{"start", Pt(10, 10), 0},
		{"end", Pt(110, 10), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProjectOffset(seg, tt.p); math.Abs(got-tt.want) > epsilon {
				t.Errorf("ProjectOffset(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestProjectDiagonal(t *testing.T) {
	seg := Seg(Pt(0, 0), Pt(80, 60))
	if l := seg.Length(); math.Abs(l-100) > epsilon {
		t.Fatalf("Length = %v, want 100", l)
	}
	tests := []struct {
		p    Point
		want float64
	}{
		{Pt(20, 15), 25},
		{Pt(72, 54), 90},
	}
	for _, tt := range tests {
		if got := ProjectOffset(seg, tt.p); math.Abs(got-tt.want) > epsilon {
			t.Errorf("ProjectOffset(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestProjectDegenerate(t *testing.T) {
	seg := Seg(Pt(5, 5), Pt(5, 5))
	if !seg.IsDegenerate() {
		t.Fatal("expected degenerate segment")
	}
	for _, p := range []Point{Pt(5, 5), Pt(100, 100), Pt(-100, 3), Pt(math.MaxFloat64, 0)} {
		got := Project(seg, p)
		if math.IsNaN(got) || got < 0 || got > 1 {
			t.Errorf("Project(%v) = %v, want value in [0,1]", p, got)
		}
	}
	if got := Project(seg, Pt(5, 5)); got != 0 {
		t.Errorf("Project(start) = %v, want 0", got)
	}
}

func TestProjectReversedSegment(t *testing.T) {
	seg := Seg(Pt(110, 10), Pt(10, 10))
	if got := ProjectOffset(seg, Pt(85, 10)); math.Abs(got-25) > epsilon {
		t.Errorf("ProjectOffset = %v, want 25", got)
	}
}

func TestSegmentAt(t *testing.T) {
	seg := Seg(Pt(0, 0), Pt(80, 60))
	got := seg.At(0.25)
	if got != Pt(20, 15) {
		t.Errorf("At(0.25) = %v, want (20,15)", got)
	}
	if got := seg.At(1); got != seg.End {
		t.Errorf("At(1) = %v, want %v", got, seg.End)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-1, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{250, 100},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 100); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
