package render

import (
	"image"
	"testing"

	"vivopaint/internal/state"
)

func countInk(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestPolylineNeedsTwoPoints(t *testing.T) {
	tests := []struct {
		name string
		pts  state.Stroke
	}{
		{"no points", nil},
		{"single point", state.Stroke{{X: 50, Y: 50}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 100, 100))
			Polyline(img, tt.pts, 1, DefaultStyle())
			if got := countInk(img); got != 0 {
				t.Errorf("got %d inked pixels, want 0", got)
			}
		})
	}
}

func TestPolylineStrokesSegment(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	Polyline(img, state.Stroke{{X: 20, Y: 50}, {X: 80, Y: 50}}, 1, DefaultStyle())

	px := img.RGBAAt(50, 50)
	if px.A == 0 {
		t.Fatal("segment center not inked")
	}
	if px.G != 0 || px.B != 0 {
		t.Errorf("got color %v, want pure red", px)
	}
	if px.A > 140 {
		t.Errorf("got alpha %d, want half-transparent ink", px.A)
	}
	if got := img.RGBAAt(50, 10); got.A != 0 {
		t.Errorf("pixel far from the stroke inked: %v", got)
	}
}

func TestPolylineCapShape(t *testing.T) {
	butt := DefaultStyle()
	butt.Cap = LineCapButt

	tests := []struct {
		name string
		sty  Style
		want bool
	}{
		{"round cap reaches past the endpoint", DefaultStyle(), true},
		{"butt cap stops at the endpoint", butt, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 100, 100))
			Polyline(img, state.Stroke{{X: 20, Y: 50}, {X: 80, Y: 50}}, 1, tt.sty)
			if got := img.RGBAAt(83, 50).A > 0; got != tt.want {
				t.Errorf("ink past the endpoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolylineJointNotBlendedTwice(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	Polyline(img, state.Stroke{{X: 20, Y: 20}, {X: 50, Y: 50}, {X: 80, Y: 20}}, 1, DefaultStyle())

	corner := img.RGBAAt(50, 50).A
	mid := img.RGBAAt(35, 35).A
	if corner == 0 || mid == 0 {
		t.Fatalf("stroke not inked where expected: corner=%d mid=%d", corner, mid)
	}
	if corner > mid+8 {
		t.Errorf("joint alpha %d exceeds segment alpha %d, whole path must composite once", corner, mid)
	}
}

func TestPolylineScalesToPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	Polyline(img, state.Stroke{{X: 20, Y: 50}, {X: 80, Y: 50}}, 2, DefaultStyle())

	if got := img.RGBAAt(100, 100).A; got == 0 {
		t.Error("segment center not inked at doubled coordinates")
	}
	if got := img.RGBAAt(100, 112).A; got != 0 {
		t.Error("stroke width not scaled with the frame")
	}
}
